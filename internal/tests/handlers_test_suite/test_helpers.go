package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/qbyten/site-api/internal/auth"
	api "github.com/qbyten/site-api/internal/http"
	handler "github.com/qbyten/site-api/internal/http/handlers"
	"github.com/qbyten/site-api/internal/models"
	"github.com/qbyten/site-api/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

var (
	token       string
	productRepo *repo.InMemoryProductRepository
	serviceRepo *repo.InMemoryServiceRepository
	settingRepo *repo.InMemorySettingRepository
	menuRepo    *repo.InMemoryMenuRepository
	userRepo    *repo.InMemoryUserRepository
	statsRepo   *repo.InMemoryStatsRepository
)

func init() {
	auth.Configure(testSecret, time.Hour)
	handler.SetRegistrationEnabled(true)
	setupTestRepos("secret")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	serviceRepo = repo.NewInMemoryServiceRepository()
	handler.SetServiceRepo(serviceRepo)

	settingRepo = repo.NewInMemorySettingRepository()
	handler.SetSettingRepo(settingRepo)

	menuRepo = repo.NewInMemoryMenuRepository()
	handler.SetMenuRepo(menuRepo)

	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
	})

	statsRepo = repo.NewInMemoryStatsRepository()
	handler.SetStatsRepo(statsRepo)
	statsRepo.SetRepositories(productRepo, serviceRepo, settingRepo, menuRepo)
}

func clearAllProducts() {
	productRepo.Clear()
}

func clearAllServices() {
	serviceRepo.Clear()
}

func clearAllSettings() {
	settingRepo.Clear()
}

func clearAllMenus() {
	menuRepo.Clear()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

// doJSON sends a JSON request, attaching the admin token when authed is set.
func doJSON(r http.Handler, method, target string, payload any, authed bool) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, target, &body)
	if authed {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/api/products", p, true)
}

func createService(r http.Handler, s handler.ServiceRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/api/services", s, true)
}

func createMenu(r http.Handler, m handler.MenuRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/api/menus", m, true)
}

func intPtr(v int) *int { return &v }
