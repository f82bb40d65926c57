package models

// Settings is the single global settings document. It is persisted as the
// "settings" collection and doubles as the file fallback for configuration
// values that are absent from the environment (config package precedence:
// env > settings file > placeholder).
type Settings struct {
	CompanyName          string `json:"companyName,omitempty"`
	Currency             string `json:"currency,omitempty"`
	TermsOfService       string `json:"termsOfService"`
	PaymentTerms         string `json:"paymentTerms"`
	MattermostWebhookURL string `json:"mattermostWebhookUrl,omitempty"`
	SupabaseURL          string `json:"supabaseUrl,omitempty"`
	SupabaseAnonKey      string `json:"supabaseAnonKey,omitempty"`
}
