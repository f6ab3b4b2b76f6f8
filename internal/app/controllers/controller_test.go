package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"jalseva-http-service/internal/app/routes"
	"jalseva-http-service/internal/domain/models"
	"jalseva-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

var clientSeq uint32

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Grampanchayat{},
		&models.Phed{},
		&models.Consumer{},
		&models.Asset{},
		&models.Inventory{},
		&models.Complaint{},
		&models.UserComplaint{},
		&models.Notification{},
	))

	cfg := &config.Config{
		JWTSecretKey:        "test-secret",
		DefaultPhedPassword: "phed1234",
		ServerPort:          "0",
	}
	return routes.SetupRouter(db, cfg, nil)
}

// do issues a request with a per-test client address so the IP rate limiter
// never trips across test functions.
func do(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = fmt.Sprintf("192.0.2.%d:1234", atomic.AddUint32(&clientSeq, 1)%250+1)
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func registerBody(t *testing.T, r *gin.Engine, publicID string) {
	t.Helper()
	w, _ := do(t, r, http.MethodPost, "/v1/api/grampanchayat/", "", gin.H{
		"name":            "Rampur Gram Panchayat",
		"grampanchayatId": publicID,
		"address":         "Block Road, Rampur",
		"villageName":     "Rampur",
		"password":        "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func loginBody(t *testing.T, r *gin.Engine, publicID string) string {
	t.Helper()
	w, env := do(t, r, http.MethodPost, "/v1/api/grampanchayat/login", "", gin.H{
		"grampanchayatId": publicID,
		"password":        "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestGrampanchayatRegisterAndLogin(t *testing.T) {
	r := setupRouter(t)
	registerBody(t, r, "GP-100")

	// duplicate public id
	w, env := do(t, r, http.MethodPost, "/v1/api/grampanchayat/", "", gin.H{
		"name":            "Other",
		"grampanchayatId": "GP-100",
		"address":         "x",
		"villageName":     "y",
		"password":        "pw",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)

	// wrong password vs unknown id
	w, _ = do(t, r, http.MethodPost, "/v1/api/grampanchayat/login", "", gin.H{
		"grampanchayatId": "GP-100", "password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodPost, "/v1/api/grampanchayat/login", "", gin.H{
		"grampanchayatId": "GP-404", "password": "secret123",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	loginBody(t, r, "GP-100")
}

func TestGrampanchayatListEmptyIs404(t *testing.T) {
	r := setupRouter(t)

	w, env := do(t, r, http.MethodGet, "/v1/api/grampanchayat/list", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)

	registerBody(t, r, "GP-100")
	w, env = do(t, r, http.MethodGet, "/v1/api/grampanchayat/list", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.NotContains(t, string(env.Data), "password")
}

func TestTokenGateOnDetails(t *testing.T) {
	r := setupRouter(t)
	registerBody(t, r, "GP-100")

	w, env := do(t, r, http.MethodPost, "/v1/api/grampanchayat/details", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Access denied. No token provided.", env.Message)

	w, env = do(t, r, http.MethodPost, "/v1/api/grampanchayat/details", "not-a-token", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid or expired token", env.Message)

	token := loginBody(t, r, "GP-100")
	w, _ = do(t, r, http.MethodPost, "/v1/api/grampanchayat/details", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAssetAddAndSpendReport(t *testing.T) {
	r := setupRouter(t)
	registerBody(t, r, "GP-100")
	registerBody(t, r, "GP-200")
	token := loginBody(t, r, "GP-100")

	for _, amount := range []float64{100, 250} {
		w, _ := do(t, r, http.MethodPost, "/v1/api/grampanchayat/asset/add", token, gin.H{
			"description":  "Hand pump",
			"amount_spent": amount,
			"receipt":      "r.jpg",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// assets of the owning body
	w, _ := do(t, r, http.MethodGet, "/v1/api/grampanchayat/assets/1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// body without assets gets a 404, not an empty list
	w, _ = do(t, r, http.MethodGet, "/v1/api/grampanchayat/assets/2", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env := do(t, r, http.MethodGet, "/v1/api/grampanchayat/spend-list", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []struct {
		ID             uint    `json:"id"`
		TotalSpent     float64 `json:"totalSpent"`
		NumberOfAssets int64   `json:"numberOfAssets"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 2)
	byID := map[uint]float64{}
	counts := map[uint]int64{}
	for _, row := range rows {
		byID[row.ID] = row.TotalSpent
		counts[row.ID] = row.NumberOfAssets
	}
	assert.Equal(t, float64(350), byID[1])
	assert.Equal(t, int64(2), counts[1])
	assert.Equal(t, float64(0), byID[2])
	assert.Equal(t, int64(0), counts[2])
}

func TestInventoryAddAndSpendReport(t *testing.T) {
	r := setupRouter(t)
	registerBody(t, r, "GP-100")
	token := loginBody(t, r, "GP-100")

	w, _ := do(t, r, http.MethodPost, "/v1/api/grampanchayat/inventory/add", token, gin.H{
		"category":       "chemical",
		"selectedOption": "Biocide",
		"amountSpent":    500,
		"receipt":        "r.jpg",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// unknown category
	w, env := do(t, r, http.MethodPost, "/v1/api/grampanchayat/inventory/add", token, gin.H{
		"category":       "tools",
		"selectedOption": "Wrench",
		"amountSpent":    50,
		"receipt":        "r.jpg",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid category selected.", env.Message)

	w, env = do(t, r, http.MethodGet, "/v1/api/grampanchayat/inventory/spend-list", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []struct {
		TotalSpend    float64 `json:"totalSpend"`
		NumberOfItems int     `json:"numberOfItems"`
		Name          string  `json:"name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, float64(500), rows[0].TotalSpend)
	assert.Equal(t, 1, rows[0].NumberOfItems)
	assert.Equal(t, "Rampur Gram Panchayat", rows[0].Name)
}

func TestConsumerRegistrationValidation(t *testing.T) {
	r := setupRouter(t)
	registerBody(t, r, "GP-100")
	token := loginBody(t, r, "GP-100")

	// 9-digit mobile
	w, _ := do(t, r, http.MethodPost, "/v1/api/user/register", token, gin.H{
		"name": "Ramesh", "address": "Ward 4",
		"number_aadhar": "123456789012", "mobileNo": "987654321",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 11-digit aadhar
	w, _ = do(t, r, http.MethodPost, "/v1/api/user/register", token, gin.H{
		"name": "Ramesh", "address": "Ward 4",
		"number_aadhar": "12345678901", "mobileNo": "9876543210",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// valid registration returns the generated password once
	w, env := do(t, r, http.MethodPost, "/v1/api/user/register", token, gin.H{
		"name": "Ramesh", "address": "Ward 4",
		"number_aadhar": "123456789012", "mobileNo": "9876543210",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var data struct {
		Password string `json:"password"`
		User     struct {
			ConsumerID string `json:"consumerId"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Password, 16)
	assert.Regexp(t, `^CP-\d+$`, data.User.ConsumerID)

	// the returned credentials log in and open the profile
	w, env = do(t, r, http.MethodPost, "/v1/api/user/login", "", gin.H{
		"mobileNo":   "9876543210",
		"consumerId": data.User.ConsumerID,
		"password":   data.Password,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))

	w, env = do(t, r, http.MethodGet, "/v1/api/user/profile", login.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "grampanchayat")
	assert.NotContains(t, string(env.Data), "password")
}

func TestUserComplaintOwnership(t *testing.T) {
	r := setupRouter(t)
	registerBody(t, r, "GP-100")
	registerBody(t, r, "GP-200")
	ownerToken := loginBody(t, r, "GP-100")
	otherToken := loginBody(t, r, "GP-200")

	// register a consumer under GP-100 and file a complaint
	w, env := do(t, r, http.MethodPost, "/v1/api/user/register", ownerToken, gin.H{
		"name": "Ramesh", "address": "Ward 4",
		"number_aadhar": "123456789012", "mobileNo": "9876543210",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var reg struct {
		Password string `json:"password"`
		User     struct {
			ConsumerID string `json:"consumerId"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &reg))

	w, env = do(t, r, http.MethodPost, "/v1/api/user/login", "", gin.H{
		"mobileNo": "9876543210", "consumerId": reg.User.ConsumerID, "password": reg.Password,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))

	w, env = do(t, r, http.MethodPost, "/v1/api/user/usercomplaint", login.Token, gin.H{
		"complaintDetails": "No water supply since Monday",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var complaint struct {
		ComplaintID string `json:"complaintId"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &complaint))

	// a foreign body may not change the status
	w, _ = do(t, r, http.MethodPut, "/v1/api/user/usercomplaints/"+complaint.ComplaintID, otherToken, gin.H{
		"status": "Resolved",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// an invalid status value is rejected
	w, env = do(t, r, http.MethodPut, "/v1/api/user/usercomplaints/"+complaint.ComplaintID, ownerToken, gin.H{
		"status": "Done",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid status.", env.Message)

	// the owning body resolves it
	w, _ = do(t, r, http.MethodPut, "/v1/api/user/usercomplaints/"+complaint.ComplaintID, ownerToken, gin.H{
		"status": "Resolved",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNotificationFeedOrdering(t *testing.T) {
	r := setupRouter(t)
	registerBody(t, r, "GP-100")
	token := loginBody(t, r, "GP-100")

	for _, title := range []string{"first", "second", "third"} {
		w, _ := do(t, r, http.MethodPost, "/v1/api/grampanchayat/notification", token, gin.H{
			"title":   title,
			"message": "announcement body",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, env := do(t, r, http.MethodGet, "/v1/api/grampanchayat/notification/list", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var feed []struct {
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &feed))
	require.Len(t, feed, 3)
	assert.Equal(t, "third", feed[0].Title)
	assert.Equal(t, "first", feed[2].Title)
}

func TestPhedLifecycle(t *testing.T) {
	r := setupRouter(t)

	w, _ := do(t, r, http.MethodPost, "/v1/api/phed/register", "", gin.H{
		"name": "District Engineer", "phone_no": "9876543210",
		"phed_id": "PHED-010", "password": "phedpass",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// duplicate id
	w, env := do(t, r, http.MethodPost, "/v1/api/phed/register", "", gin.H{
		"name": "Dup", "phone_no": "9000000000",
		"phed_id": "PHED-010", "password": "x",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "PHED ID or phone number already exists.", env.Message)

	// unknown id and wrong password share one message
	w, env = do(t, r, http.MethodPost, "/v1/api/phed/login", "", gin.H{
		"phed_id": "PHED-404", "password": "phedpass",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid PHED ID or password.", env.Message)

	w, env = do(t, r, http.MethodPost, "/v1/api/phed/login", "", gin.H{
		"phed_id": "PHED-010", "password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid PHED ID or password.", env.Message)

	w, env = do(t, r, http.MethodPost, "/v1/api/phed/login", "", gin.H{
		"phed_id": "PHED-010", "password": "phedpass",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))

	// update requires the token now
	w, _ = do(t, r, http.MethodPatch, "/v1/api/phed/update", "", gin.H{"name": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = do(t, r, http.MethodPatch, "/v1/api/phed/update", login.Token, gin.H{
		"name": "Chief Engineer",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestComplaintRoutesRequireBodyToken(t *testing.T) {
	r := setupRouter(t)
	registerBody(t, r, "GP-100")
	token := loginBody(t, r, "GP-100")

	w, _ := do(t, r, http.MethodPost, "/v1/api/grampanchayat/complaint/add", "", gin.H{
		"description": "x", "purpose": "y",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env := do(t, r, http.MethodPost, "/v1/api/grampanchayat/complaint/add", token, gin.H{
		"description": "Chlorine stock not delivered", "purpose": "Supply escalation",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var complaint struct {
		ComplainNo string `json:"complainNo"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &complaint))
	assert.Regexp(t, `^CPL-\d+-\d{4}$`, complaint.ComplainNo)

	w, _ = do(t, r, http.MethodGet, "/v1/api/grampanchayat/complaint/list", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
