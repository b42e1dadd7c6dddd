package env

import (
	"os"
)

const (
	AWSRegion        = "AWS_REGION"
	AWSID            = "AWS_ID"
	AWSSecret        = "AWS_SECRET"
	AWSToken         = "AWS_TOKEN"
	DynamoDBEndpoint = "DYNAMODB_ENDPOINT"

	OpenAIAPIKey     = "OPENAI_API_KEY"
	OpenAIChatModel  = "OPENAI_CHAT_MODEL"
	OpenAIEmbedModel = "OPENAI_EMBED_MODEL"

	FAQRedisURL  = "FAQ_REDIS_URL"
	FAQRedisPass = "FAQ_REDIS_PASS"
	FAQBaseURL   = "FAQ_BASE_URL"

	MagentoAPIURL   = "MAGENTO_API_URL"
	MagentoAPIToken = "MAGENTO_API_TOKEN"

	ZohoDeskURL      = "ZOHO_DESK_URL"
	ZohoOrgID        = "ZOHO_ORG_ID"
	ZohoDepartmentID = "ZOHO_DEPARTMENT_ID"
	ZohoContactID    = "ZOHO_CONTACT_ID"
	ZohoOAuthToken   = "ZOHO_OAUTH_TOKEN"

	OrderNumberMinDigits   = "ORDER_NUMBER_MIN_DIGITS"
	EscalationMessageLimit = "ESCALATION_MESSAGE_LIMIT"

	ListenAddr         = "LISTEN_ADDR"
	CORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"
)

// Required lists the variables the chat server cannot start without.
// Checked from cmd main rather than package init so tests stay hermetic.
func Required() []string {
	return []string{
		AWSRegion,
		AWSID,
		AWSSecret,
		OpenAIAPIKey,
		FAQRedisURL,
		MagentoAPIURL,
		MagentoAPIToken,
		ZohoDeskURL,
		ZohoOrgID,
		ZohoDepartmentID,
		ZohoOAuthToken,
	}
}

func MustHave(keys ...string) {
	for _, key := range keys {
		if os.Getenv(key) == "" {
			panic("env: required environment variable not set: " + key)
		}
	}
}

func Get(key string) string {
	return os.Getenv(key)
}

func GetOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func MustGet(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic("env: required environment variable not set: " + key)
	}
	return val
}
