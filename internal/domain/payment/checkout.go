package payment

// Checkout is what the browser needs to open the hosted widget: the widget
// configuration and the request to open it with.
type Checkout struct {
	Key       string  `json:"key"`
	Test      bool    `json:"test"`
	ScriptURL string  `json:"scriptUrl"`
	Request   Request `json:"data"`
}
