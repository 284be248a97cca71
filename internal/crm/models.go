package crm

// Inbox buckets used to partition the customer list.
const (
	BucketFollowupDue = "followup_due"
	BucketOpen        = "open"
	BucketWaiting     = "waiting"
	BucketClosed      = "closed"
)

// Thread item directions.
const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// ChannelWhatsApp is the only channel this client sends on.
const ChannelWhatsApp = "whatsapp"

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// InboxCustomer is one row of the inbox list. It is a read-only
// projection of server state; ordering is server-determined.
type InboxCustomer struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Phone                 string   `json:"phone,omitempty"`
	Email                 string   `json:"email,omitempty"`
	Stage                 string   `json:"stage"`
	Tags                  []string `json:"tags"`
	Bucket                string   `json:"bucket"`
	NextFollowUpAt        string   `json:"next_follow_up_at,omitempty"`
	LastActivityAt        string   `json:"last_activity_at,omitempty"`
	LastActivityDirection string   `json:"last_activity_direction,omitempty"`
}

// ThreadItem is one message or status event in a customer's
// conversation history, ordered by the server.
type ThreadItem struct {
	Kind       string `json:"kind"`
	ID         string `json:"id"`
	Direction  string `json:"direction"`
	Channel    string `json:"channel"`
	OccurredAt string `json:"occurred_at"`
	Content    string `json:"content,omitempty"`
	Status     string `json:"status,omitempty"`
}

// Summary carries the backend's default-range analytics counters. The
// outcome and conversion-rate keys are assumed to correspond but this
// is not enforced; a missing rate renders as zero.
type Summary struct {
	Start                      string             `json:"start"`
	End                        string             `json:"end"`
	LeadsCreated               int                `json:"leads_created"`
	OutboundSent               int                `json:"outbound_sent"`
	InboundReceived            int                `json:"inbound_received"`
	MedianFirstResponseSeconds *float64           `json:"median_first_response_seconds,omitempty"`
	Outcomes                   map[string]int     `json:"outcomes"`
	ConversionRates            map[string]float64 `json:"conversion_rates"`
}

type LeadsPoint struct {
	Date  string `json:"date"`
	Leads int    `json:"leads"`
}

// TemplateRow reports per-template reply rates within 7 days. The rate
// is server-supplied and trusted, not recomputed from the two counts.
type TemplateRow struct {
	TemplateID      string  `json:"template_id"`
	TemplateName    string  `json:"template_name"`
	Sent            int     `json:"sent"`
	RepliedWithin7d int     `json:"replied_within_7d"`
	ReplyRate7d     float64 `json:"reply_rate_7d"`
}
