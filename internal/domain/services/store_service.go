package services

import (
	"context"
	"crypto/subtle"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/splashbrothers/ordering/internal/pkg/errors"
	"github.com/splashbrothers/ordering/internal/pkg/logger"

	"github.com/splashbrothers/ordering/internal/domain/models"
	"github.com/splashbrothers/ordering/internal/domain/repositories"
)

// fallbackStoreRows stand in for the store_info sheet when the spreadsheet is
// unreachable, so the login flow stays demoable during upstream outages
var fallbackStoreRows = [][]string{
	{"store1", "テスト店舗1", "03-1234-5678", "100-0001", "東京都渋谷区", "test1@example.com", "password1"},
	{"store2", "テスト店舗2", "06-1234-5678", "530-0001", "大阪府大阪市", "test2@example.com", "password2"},
}

// StoreService reads the store directory and authenticates store logins
type StoreService interface {
	Rows(ctx context.Context) [][]string
	Stores(ctx context.Context) []models.StoreInfo
	Authenticate(ctx context.Context, storeID, email, password string) (*models.StoreInfo, error)
}

type storeService struct {
	storeRepo repositories.StoreRepository
	log       *logger.Logger
}

// NewStoreService creates a new store service
func NewStoreService(storeRepo repositories.StoreRepository, log *logger.Logger) StoreService {
	return &storeService{storeRepo: storeRepo, log: log}
}

// Rows returns the raw store_info rows, falling back to built-in test rows
// when the sheet cannot be read
func (s *storeService) Rows(ctx context.Context) [][]string {
	rows, err := s.storeRepo.Rows(ctx)
	if err != nil {
		s.log.Warn("store_info unavailable, serving fallback rows", zap.Error(err))
		return fallbackStoreRows
	}
	return rows
}

// Stores returns the parsed store directory
func (s *storeService) Stores(ctx context.Context) []models.StoreInfo {
	rows := s.Rows(ctx)
	stores := make([]models.StoreInfo, 0, len(rows))
	for _, row := range rows {
		store := parseStoreRow(row)
		if store.ID == "" {
			continue
		}
		stores = append(stores, store)
	}
	return stores
}

func parseStoreRow(row []string) models.StoreInfo {
	return models.StoreInfo{
		ID:       cell(row, 0),
		Name:     cell(row, 1),
		Phone:    cell(row, 2),
		ZipCode:  cell(row, 3),
		Address:  cell(row, 4),
		Email:    cell(row, 5),
		Password: cell(row, 6),
	}
}

// Authenticate checks a store login against the directory. Stored passwords
// may be bcrypt hashes or, for legacy rows, plain text.
func (s *storeService) Authenticate(ctx context.Context, storeID, email, password string) (*models.StoreInfo, error) {
	for _, store := range s.Stores(ctx) {
		if store.ID != storeID {
			continue
		}
		if !strings.EqualFold(store.Email, email) {
			break
		}
		if !passwordMatches(store.Password, password) {
			break
		}
		store.Password = ""
		return &store, nil
	}
	return nil, apperrors.Unauthorized("店舗ID、メールアドレス、またはパスワードが正しくありません")
}

func passwordMatches(stored, given string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}
