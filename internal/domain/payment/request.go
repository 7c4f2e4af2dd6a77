package payment

import (
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/pkg/errs"
)

var ErrEmptyInvoice = errs.New("invoice is required")

// Request is the payload the hosted checkout widget is opened with. The JSON
// keys are the widget's contract and must not change.
type Request struct {
	Name               string `json:"name"`
	Description        string `json:"description"`
	Invoice            string `json:"invoice"`
	Currency           string `json:"currency"`
	Amount             int64  `json:"amount"`
	TaxBase            string `json:"tax_base"`
	Tax                string `json:"tax"`
	Country            string `json:"country"`
	Lang               string `json:"lang"`
	External           string `json:"external"`
	Extra1             string `json:"extra1"`
	Extra2             string `json:"extra2"`
	Extra3             string `json:"extra3"`
	EmailBilling       string `json:"email_billing"`
	NameBilling        string `json:"name_billing"`
	MobilephoneBilling string `json:"mobilephone_billing"`
	Response           string `json:"response"`
	Confirmation       string `json:"confirmation"`
	Method             string `json:"method"`
}

// Settings are the merchant-wide values every request carries.
type Settings struct {
	Currency        string
	Country         string
	Lang            string
	ResponseURL     string
	ConfirmationURL string
}

func DefaultSettings() Settings {
	return Settings{
		Currency: "COP",
		Country:  "CO",
		Lang:     "es",
	}
}

// NewRequest builds the checkout payload for a draft that already passed
// validation. Amount is the draft's last computed quote.
func NewRequest(d *reservation.Draft, invoice string, s Settings) (Request, error) {
	if invoice == "" {
		return Request{}, ErrEmptyInvoice
	}

	roomType := d.RoomType().String()
	return Request{
		Name:               "Reserva " + roomType,
		Description:        "Habitación " + roomType,
		Invoice:            invoice,
		Currency:           s.Currency,
		Amount:             d.Quote().Total().Amount(),
		TaxBase:            "0",
		Tax:                "0",
		Country:            s.Country,
		Lang:               s.Lang,
		External:           "false",
		Extra1:             d.Name(),
		Extra2:             d.Email(),
		Extra3:             d.Phone(),
		EmailBilling:       d.Email(),
		NameBilling:        d.Name(),
		MobilephoneBilling: d.Phone(),
		Response:           s.ResponseURL,
		Confirmation:       s.ConfirmationURL,
		Method:             "GET",
	}, nil
}
