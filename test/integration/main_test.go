package integration_test

import (
	"encoding/json"
	"log"
	"os"
	"sync"
	"testing"

	"tradelab_backend/test/helpers"
)

// Глобальные переменные для общего состояния
var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer возвращает тестовый сервер (создает при первом вызове).
// Тесты этого пакета требуют живую postgres в DATABASE_URL.
func GetTestServer(t *testing.T) *helpers.TestServer {
	helpers.RequireDatabase(t)

	serverOnce.Do(func() {
		if os.Getenv("JWT_SECRET") == "" {
			os.Setenv("JWT_SECRET", "my_super_secret_key_for_tests_12345")
		}
		if os.Getenv("SERVER_ENV") == "" {
			os.Setenv("SERVER_ENV", "test")
		}

		log.Println("--- [GetTestServer] Initializing test server... ---")
		globalTestServer = helpers.NewTestServer(t)
		log.Println("--- [GetTestServer] Test server ready ---")
	})
	return globalTestServer
}

// TestMain только для глобальной очистки
func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		log.Println("--- [TestMain] Cleaning up... ---")
		globalTestServer.Close()
	}

	os.Exit(code)
}

// errorBody - форма ответа об ошибке
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Domain  string `json:"domain"`
		Message string `json:"message"`
	} `json:"error"`
}

func parseErrorBody(t *testing.T, body string) errorBody {
	var eb errorBody
	if err := json.Unmarshal([]byte(body), &eb); err != nil {
		t.Fatalf("Не удалось распарсить тело ошибки %q: %v", body, err)
	}
	return eb
}
