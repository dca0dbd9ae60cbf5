package paymentControllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	paymentControllers "github.com/developerssaddam/bistro-boss-server/controllers/payment"
	"github.com/developerssaddam/bistro-boss-server/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setup(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.CartEntry{},
		&models.Payment{},
		&models.PaymentItem{},
		&models.PaymentCartRef{},
	))

	r := gin.New()
	r.GET("/payment/history/:email", paymentControllers.GetPaymentHistory(db))
	r.POST("/payment/history", paymentControllers.RecordPayment(db))
	r.POST("/create-payment-intent", paymentControllers.CreatePaymentIntent())
	return r, db
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRecordPaymentClearsReferencedCartEntries(t *testing.T) {
	r, db := setup(t)

	a := models.CartEntry{Email: "guest@bistro.app", MenuItemID: 1, Name: "Soup", Price: 4}
	b := models.CartEntry{Email: "guest@bistro.app", MenuItemID: 2, Name: "Duck", Price: 14.5}
	keep := models.CartEntry{Email: "other@bistro.app", MenuItemID: 3, Name: "Pasta", Price: 9}
	require.NoError(t, db.Create(&a).Error)
	require.NoError(t, db.Create(&b).Error)
	require.NoError(t, db.Create(&keep).Error)

	body := fmt.Sprintf(
		`{"email":"guest@bistro.app","amount":18.5,"transaction_id":"tx_123","menu_item_ids":[1,2],"cart_ids":[%d,%d]}`,
		a.ID, b.ID,
	)
	w := postJSON(r, "/payment/history", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["cartCleared"])

	// Entries A and B gone, unrelated entry untouched, exactly one payment.
	var remaining []models.CartEntry
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, keep.ID, remaining[0].ID)

	var payments []models.Payment
	require.NoError(t, db.Preload("Items").Find(&payments).Error)
	require.Len(t, payments, 1)
	assert.Equal(t, "tx_123", payments[0].TransactionID)
	assert.True(t, payments[0].CartCleared)
	assert.Len(t, payments[0].Items, 2)
}

func TestRecordPaymentGeneratesTransactionID(t *testing.T) {
	r, db := setup(t)

	w := postJSON(r, "/payment/history",
		`{"email":"guest@bistro.app","amount":5,"menu_item_ids":[1],"cart_ids":[]}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var payment models.Payment
	require.NoError(t, db.First(&payment).Error)
	assert.NotEmpty(t, payment.TransactionID)
}

func TestSweepPendingCartCleanups(t *testing.T) {
	_, db := setup(t)

	entry := models.CartEntry{Email: "guest@bistro.app", MenuItemID: 1, Name: "Soup", Price: 4}
	require.NoError(t, db.Create(&entry).Error)

	// A payment whose second phase never ran.
	payment := models.Payment{
		Email:    "guest@bistro.app",
		Amount:   4,
		CartRefs: []models.PaymentCartRef{{CartEntryID: entry.ID}},
	}
	require.NoError(t, db.Create(&payment).Error)

	swept, err := paymentControllers.SweepPendingCartCleanups(db)
	require.NoError(t, err)
	assert.Equal(t, 1, swept)

	var count int64
	require.NoError(t, db.Model(&models.CartEntry{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	var settled models.Payment
	require.NoError(t, db.First(&settled, payment.ID).Error)
	assert.True(t, settled.CartCleared)

	// Re-running finds nothing pending.
	swept, err = paymentControllers.SweepPendingCartCleanups(db)
	require.NoError(t, err)
	assert.Equal(t, 0, swept)
}

func TestGetPaymentHistoryFiltersByEmail(t *testing.T) {
	r, db := setup(t)

	require.NoError(t, db.Create(&models.Payment{Email: "guest@bistro.app", Amount: 10, CartCleared: true}).Error)
	require.NoError(t, db.Create(&models.Payment{Email: "other@bistro.app", Amount: 99, CartCleared: true}).Error)

	req := httptest.NewRequest("GET", "/payment/history/guest@bistro.app", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var payments []models.Payment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payments))
	require.Len(t, payments, 1)
	assert.Equal(t, 10.0, payments[0].Amount)
}

func TestCreatePaymentIntent(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "/v1/payment_intents", req.URL.Path)
		require.Equal(t, "Bearer sk_test_123", req.Header.Get("Authorization"))
		require.NoError(t, req.ParseForm())
		assert.Equal(t, "1850", req.PostForm.Get("amount"))
		assert.Equal(t, "usd", req.PostForm.Get("currency"))
		fmt.Fprint(w, `{"id":"pi_1","client_secret":"pi_1_secret_abc"}`)
	}))
	defer provider.Close()

	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_API_URL", provider.URL)

	r, _ := setup(t)

	w := postJSON(r, "/create-payment-intent", `{"price":18.5}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pi_1_secret_abc", resp["clientSecret"])
}

func TestCreatePaymentIntentProviderError(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		fmt.Fprint(w, `{"error":{"type":"card_error","message":"Your card was declined."}}`)
	}))
	defer provider.Close()

	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_API_URL", provider.URL)

	r, _ := setup(t)

	w := postJSON(r, "/create-payment-intent", `{"price":18.5}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
