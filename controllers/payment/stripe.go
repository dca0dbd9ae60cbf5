package paymentControllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const defaultStripeAPIURL = "https://api.stripe.com"

type stripeIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Error        *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// getStripeConfig reads the provider secret key and API base URL.
func getStripeConfig() (secretKey, apiURL string, err error) {
	secretKey = os.Getenv("STRIPE_SECRET_KEY")
	if secretKey == "" {
		return "", "", fmt.Errorf("stripe configuration missing")
	}
	apiURL = os.Getenv("STRIPE_API_URL")
	if apiURL == "" {
		apiURL = defaultStripeAPIURL
	}
	return secretKey, apiURL, nil
}

// createStripeIntent asks the provider for a payment intent and returns its
// client secret. Every call creates a distinct intent; no idempotency key is
// sent.
func createStripeIntent(amountCents int64) (string, error) {
	secretKey, apiURL, err := getStripeConfig()
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", "usd")
	form.Add("payment_method_types[]", "card")

	req, err := http.NewRequest("POST", apiURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+secretKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach payment provider: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var intent stripeIntentResponse
	if err := json.Unmarshal(body, &intent); err != nil {
		return "", fmt.Errorf("failed to parse provider response: %v", err)
	}
	if intent.Error != nil {
		return "", fmt.Errorf("provider error: %s", intent.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("provider error (%d): %s", resp.StatusCode, string(body))
	}
	if intent.ClientSecret == "" {
		return "", fmt.Errorf("provider returned empty client secret")
	}

	return intent.ClientSecret, nil
}

// POST /create-payment-intent
func CreatePaymentIntent() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Price float64 `json:"price" binding:"required,gt=0"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		clientSecret, err := createStripeIntent(int64(input.Price * 100))
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
	}
}
