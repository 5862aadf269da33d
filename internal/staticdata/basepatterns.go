package staticdata

import "github.com/standardbeagle/secretscan/internal/scan/types"

// basePatterns is the embedded default pattern table, ported verbatim (name,
// regex, description, keywords, priority) from the reference implementation.
// Every regex here is RE2-compatible: no backreferences, no lookaround.
var basePatterns = []types.BasePattern{
	// Modern AI API keys
	{
		Name:        "OpenAI API Key (New Format)",
		Regex:       `sk-proj-[\dA-Za-z]{43,64}`,
		Description: "OpenAI API keys (new project-based format)",
		Keywords:    []string{"sk-proj-"},
		Priority:    9,
	},
	{
		Name:        "OpenAI API Key (Legacy)",
		Regex:       `sk-[\dA-Za-z]{43,51}`,
		Description: "OpenAI API keys (legacy format)",
		Keywords:    []string{"sk-"},
		Priority:    9,
	},
	{
		Name:        "Anthropic Claude API Key",
		Regex:       `sk-ant-api\d{2}-[\dA-Za-z_-]{43,95}`,
		Description: "Anthropic Claude API keys",
		Keywords:    []string{"sk-ant-api"},
		Priority:    9,
	},
	{
		Name:        "Anthropic Admin API Key",
		Regex:       `sk-ant-admin-[\dA-Za-z_-]{43,95}`,
		Description: "Anthropic Admin API keys",
		Keywords:    []string{"sk-ant-admin"},
		Priority:    9,
	},
	{
		Name:        "Hugging Face Token",
		Regex:       `hf_[\dA-Za-z]{37}`,
		Description: "Hugging Face API tokens",
		Keywords:    []string{"hf_"},
		Priority:    9,
	},
	{
		Name:        "Cohere API Key",
		Regex:       `co\.[\dA-Za-z_-]{20,}`,
		Description: "Cohere API keys",
		Keywords:    []string{"co."},
		Priority:    8,
	},
	{
		Name:        "Replicate API Token",
		Regex:       `r8_[\dA-Za-z]{40,}`,
		Description: "Replicate API tokens",
		Keywords:    []string{"r8_"},
		Priority:    8,
	},

	// Version control
	{
		Name:        "GitHub Token",
		Regex:       `(?:gh[oprsu]|github_pat)_[\dA-Za-z_]{36}`,
		Description: "GitHub personal access tokens",
		Keywords:    []string{"ghp_", "gho_", "ghr_", "ghs_", "ghu_", "github_pat"},
		Priority:    8,
	},
	{
		Name:        "GitLab Token",
		Regex:       `glpat-[\dA-Za-z_=-]{20,22}`,
		Description: "GitLab personal access tokens",
		Keywords:    []string{"glpat-"},
		Priority:    8,
	},

	// Cloud providers
	{
		Name:        "AWS Access Key",
		Regex:       `AKIA[0-9A-Z]{16}`,
		Description: "Amazon Web Services access keys",
		Keywords:    []string{"AKIA"},
		Priority:    8,
	},
	{
		Name:        "AWS Secret Key",
		Regex:       `(?i:aws.{0,20}secret.{0,20}key.{0,20}[:=]\s*['"]?[0-9a-zA-Z/+=]{40}['"]?)`,
		Description: "Amazon Web Services secret access keys",
		Keywords:    []string{"aws", "secret", "key"},
		Priority:    8,
	},
	{
		Name:        "GCP API Key",
		Regex:       `AIzaSy[\dA-Za-z_-]{33}`,
		Description: "Google Cloud Platform API keys",
		Keywords:    []string{"AIzaSy"},
		Priority:    8,
	},
	{
		Name:        "Azure Storage Key",
		Regex:       `AccountKey=[\d+/=A-Za-z]{88}`,
		Description: "Azure Storage account keys",
		Keywords:    []string{"AccountKey="},
		Priority:    8,
	},
	{
		Name:        "Azure Client Secret",
		Regex:       `(?i:azure.{0,20}client.{0,20}secret.{0,20}[:=]\s*['"]?[0-9a-zA-Z.~_-]{34,40}['"]?)`,
		Description: "Azure application client secrets",
		Keywords:    []string{"azure", "client", "secret"},
		Priority:    7,
	},
	{
		Name:        "Alibaba Access Key",
		Regex:       `(LTAI)[\dA-Za-z]{12,20}`,
		Description: "Alibaba Cloud access keys",
		Keywords:    []string{"LTAI"},
		Priority:    7,
	},

	// Payment processors
	{
		Name:        "Stripe API Key",
		Regex:       `[rs]k_live_[\dA-Za-z]{24,247}`,
		Description: "Stripe API keys (live environment)",
		Keywords:    []string{"sk_live_", "rk_live_"},
		Priority:    8,
	},
	{
		Name:        "Square API Key",
		Regex:       `sq0[ic][a-z]{2}-[\dA-Za-z_-]{22,50}`,
		Description: "Square API keys",
		Keywords:    []string{"sq0"},
		Priority:    7,
	},
	{
		Name:        "Square Token",
		Regex:       `EAAA[\dA-Za-z+=-]{60}`,
		Description: "Square access tokens",
		Keywords:    []string{"EAAA"},
		Priority:    7,
	},

	// Communication & messaging
	{
		Name:        "Slack Token",
		Regex:       `xox[aboprs]-(?:\d+-)+[\da-z]+`,
		Description: "Slack API tokens",
		Keywords:    []string{"xox"},
		Priority:    7,
	},
	{
		Name:        "Slack Webhook",
		Regex:       `https://hooks\.slack\.com/services/T[\dA-Za-z_]+/B[\dA-Za-z_]+/[\dA-Za-z_]+`,
		Description: "Slack incoming webhook URLs",
		Keywords:    []string{"hooks.slack.com"},
		Priority:    7,
	},
	{
		Name:        "SendGrid API Key",
		Regex:       `SG\.[\dA-Za-z_-]{22}\.[\dA-Za-z_-]{43}`,
		Description: "SendGrid API keys",
		Keywords:    []string{"SG."},
		Priority:    7,
	},
	{
		Name:        "Twilio API Key",
		Regex:       `(?:AC|SK)[\da-z]{32}`,
		Description: "Twilio API keys and tokens",
		Keywords:    []string{"AC", "SK"},
		Priority:    6,
	},
	{
		Name:        "Mailchimp API Key",
		Regex:       `[\da-f]{32}-us\d{1,2}`,
		Description: "Mailchimp API keys",
		Keywords:    []string{"us"},
		Priority:    5,
	},

	// Package managers & registries
	{
		Name:        "npm Token (Modern)",
		Regex:       `npm_[\dA-Za-z]{36}`,
		Description: "npm authentication tokens (modern format)",
		Keywords:    []string{"npm_"},
		Priority:    7,
	},
	{
		Name:        "npm Token (Legacy)",
		Regex:       `//.+/:_authToken=[\dA-Za-z_-]+`,
		Description: "npm authentication tokens (legacy format)",
		Keywords:    []string{"_authToken="},
		Priority:    7,
	},

	// Cryptographic keys & certificates
	{
		Name:        "Private Key (Comprehensive)",
		Regex:       `(?s)-----BEGIN[ A-Z0-9_-]{0,100}PRIVATE KEY(?: BLOCK)?-----[\s\S]{64,}?-----END[ A-Z0-9_-]{0,100}PRIVATE KEY(?: BLOCK)?-----`,
		Description: "Comprehensive private key detection including RSA, DSA, EC, OpenSSH, PGP with full content",
		Keywords:    []string{"-----BEGIN", "PRIVATE KEY"},
		Priority:    8,
	},
	{
		Name:        "SSL/TLS Certificate",
		Regex:       `(?s)-----BEGIN[ A-Z0-9_-]{0,100}CERTIFICATE[ A-Z0-9_-]{0,100}-----[\s\S]{64,}?-----END[ A-Z0-9_-]{0,100}CERTIFICATE[ A-Z0-9_-]{0,100}-----`,
		Description: "SSL/TLS certificates and certificate signing requests with full content",
		Keywords:    []string{"-----BEGIN", "CERTIFICATE"},
		Priority:    6,
	},
	{
		Name:        "Certificate Signing Request",
		Regex:       `(?s)-----BEGIN[ A-Z0-9_-]{0,100}CERTIFICATE REQUEST[ A-Z0-9_-]{0,100}-----[\s\S]{64,}?-----END[ A-Z0-9_-]{0,100}CERTIFICATE REQUEST[ A-Z0-9_-]{0,100}-----`,
		Description: "Certificate Signing Requests (CSR) with full content",
		Keywords:    []string{"-----BEGIN", "CERTIFICATE REQUEST"},
		Priority:    6,
	},
	{
		Name:        "SSH Public Key Content",
		Regex:       `ssh-(?:rsa|dss|ed25519|ecdsa-sha2-nistp(?:256|384|521))\s+[A-Za-z0-9+/]{100,}={0,2}`,
		Description: "SSH public key content in authorized_keys format",
		Keywords:    []string{"ssh-rsa", "ssh-dss", "ssh-ed25519", "ssh-ecdsa"},
		Priority:    6,
	},
	{
		Name:        "Age Secret Key",
		Regex:       `AGE-SECRET-KEY-1[\dA-Z]{58}`,
		Description: "Age encryption secret keys",
		Keywords:    []string{"AGE-SECRET-KEY"},
		Priority:    7,
	},
	{
		Name:        "PuTTY Private Key",
		Regex:       `PuTTY-User-Key-File-\d+`,
		Description: "PuTTY private key files",
		Keywords:    []string{"PuTTY-User-Key"},
		Priority:    6,
	},
	{
		Name:        "1Password Secret Key",
		Regex:       `op://[\dA-Za-z/\-]{10,}`,
		Description: "1Password secret references",
		Keywords:    []string{"op://"},
		Priority:    7,
	},

	// JWT & authentication tokens
	{
		Name:        "JWT/JWE Token",
		Regex:       `\beyJ[\dA-Za-z=_-]+(?:\.[\dA-Za-z=_-]{3,}){1,4}`,
		Description: "JSON Web Tokens and JSON Web Encryption",
		Keywords:    []string{"eyJ"},
		Priority:    7,
	},

	// Database connection strings
	{
		Name:        "MongoDB Connection String",
		Regex:       `mongodb(\+srv)?://[^\s'"]+:[^\s'"]+@[^\s'"]+`,
		Description: "MongoDB connection strings with credentials",
		Keywords:    []string{"mongodb://", "mongodb+srv://"},
		Priority:    7,
	},
	{
		Name:        "PostgreSQL Connection String",
		Regex:       `postgres(ql)?://[^\s'"]+:[^\s'"]+@[^\s'"]+`,
		Description: "PostgreSQL connection strings with credentials",
		Keywords:    []string{"postgresql://", "postgres://"},
		Priority:    7,
	},
	{
		Name:        "MySQL Connection String",
		Regex:       `mysql://[^\s'"]+:[^\s'"]+@[^\s'"]+`,
		Description: "MySQL connection strings with credentials",
		Keywords:    []string{"mysql://"},
		Priority:    7,
	},

	// URLs with credentials
	{
		Name:        "URL with Credentials",
		Regex:       `[A-Za-z]+://\S{3,50}:(\S{8,50})@[\dA-Za-z#%&+./:=?_~-]+`,
		Description: "URLs containing embedded credentials",
		Keywords:    []string{"://"},
		Priority:    6,
	},

	// Additional services
	{
		Name:        "Airtable API Key",
		Regex:       `key[\dA-Za-z]{14}`,
		Description: "Airtable API keys",
		Keywords:    []string{"key"},
		Priority:    5,
	},
	{
		Name:        "Intra42 Token",
		Regex:       `s-s4t2(?:af|ud)-[\da-f]{64}`,
		Description: "42 School Intra API tokens",
		Keywords:    []string{"s-s4t2"},
		Priority:    6,
	},
	{
		Name:        "Mistral AI API Key",
		Regex:       `[\da-f]{8}-[\da-f]{4}-[\da-f]{4}-[\da-f]{4}-[\da-f]{12}`,
		Description: "Mistral AI API keys (UUID format)",
		Keywords:    []string{},
		Priority:    5,
	},

	// Private key header (legacy compatibility)
	{
		Name:        "Private Key Header",
		Regex:       `-----BEGIN[ A-Z0-9_-]{0,100}PRIVATE KEY(?: BLOCK)?-----`,
		Description: "Private key headers (for backward compatibility)",
		Keywords:    []string{"-----BEGIN", "PRIVATE KEY"},
		Priority:    3,
	},

	// Generic secret pattern (main workhorse for unknown formats)
	{
		Name:        "Generic Secret Pattern",
		Regex:       "(?i:key|token|secret|password|api|auth|credential|pass)\\w*[\"']?]?\\s*(?:[:=]|:=|=>|<-|>)\\s*[\\t \"'`]?([\\w+./=~\\-\\\\`^]{15,90})",
		Description: "Generic pattern for detecting potential secrets based on context keywords",
		Keywords:    []string{"key", "token", "secret", "password", "api", "auth", "credential", "pass"},
		Priority:    2,
	},
}
