package dto

// Ledger updates have two mutually exclusive modes, picked by the presence of
// payment_receipt_url: recording a payment (receipt + paid flag only) versus
// adjusting the fee schedule (numeric components only).

type ArtistPaymentUpdateRequest struct {
	EventID  string `json:"event_id" validate:"required,uuid4"`
	ArtistID string `json:"artist_id" validate:"required,uuid4"`

	PaymentReceiptURL *string `json:"payment_receipt_url,omitempty"`

	Fee         *float64 `json:"payment_fee,omitempty"`
	AdvanceFee  *float64 `json:"payment_advance_fee,omitempty"`
	TDS         *float64 `json:"payment_tds,omitempty"`
	FinalAmount *float64 `json:"payment_final_amount,omitempty"`
}

type SponsorPaymentUpdateRequest struct {
	EventID   string `json:"event_id" validate:"required,uuid4"`
	SponsorID string `json:"sponsor_id" validate:"required,uuid4"`

	PaymentReceiptURL *string `json:"payment_receipt_url,omitempty"`

	Donation        *float64 `json:"payment_donation,omitempty"`
	AdvanceDonation *float64 `json:"payment_advance_donation,omitempty"`
	GST             *float64 `json:"payment_gst,omitempty"`
	FinalAmount     *float64 `json:"payment_final_amount,omitempty"`
}
