package telegram

// SendInvoiceOptions represents optional parameters of sendInvoice.
type SendInvoiceOptions struct {
	ProviderData              *string
	PhotoURL                  *string
	PhotoSize                 *int
	PhotoWidth                *int
	PhotoHeight               *int
	NeedName                  *bool
	NeedPhoneNumber           *bool
	NeedEmail                 *bool
	NeedShippingAddress       *bool
	SendPhoneNumberToProvider *bool
	SendEmailToProvider       *bool
	IsFlexible                *bool
	DisableNotification       *bool
	ReplyToMessageID          *int64
	ReplyMarkup               *InlineKeyboardMarkup
}

// SendInvoice builds a sendInvoice request. Invoices can only be sent to
// private chats, so the chat is identified by its numeric id.
func SendInvoice(chatID int64, title, description, payload, providerToken, startParameter, currency string, prices []LabeledPrice, opts *SendInvoiceOptions) Request {
	p := params{}.
		set("chat_id", chatID).
		set("title", title).
		set("description", description).
		set("payload", payload).
		set("provider_token", providerToken).
		set("start_parameter", startParameter).
		set("currency", currency).
		set("prices", prices)
	if opts != nil {
		setOpt(p, "provider_data", opts.ProviderData)
		setOpt(p, "photo_url", opts.PhotoURL)
		setOpt(p, "photo_size", opts.PhotoSize)
		setOpt(p, "photo_width", opts.PhotoWidth)
		setOpt(p, "photo_height", opts.PhotoHeight)
		setOpt(p, "need_name", opts.NeedName)
		setOpt(p, "need_phone_number", opts.NeedPhoneNumber)
		setOpt(p, "need_email", opts.NeedEmail)
		setOpt(p, "need_shipping_address", opts.NeedShippingAddress)
		setOpt(p, "send_phone_number_to_provider", opts.SendPhoneNumberToProvider)
		setOpt(p, "send_email_to_provider", opts.SendEmailToProvider)
		setOpt(p, "is_flexible", opts.IsFlexible)
		setOpt(p, "disable_notification", opts.DisableNotification)
		setOpt(p, "reply_to_message_id", opts.ReplyToMessageID)
		setOpt(p, "reply_markup", opts.ReplyMarkup)
	}

	return Request{Method: "sendInvoice", Params: p}
}

// AnswerShippingQueryOptions represents optional parameters of
// answerShippingQuery. ShippingOptions is required when ok is true,
// ErrorMessage when ok is false.
type AnswerShippingQueryOptions struct {
	ShippingOptions []ShippingOption
	ErrorMessage    *string
}

// AnswerShippingQuery builds an answerShippingQuery request.
func AnswerShippingQuery(shippingQueryID string, ok bool, opts *AnswerShippingQueryOptions) Request {
	p := params{}.set("shipping_query_id", shippingQueryID).set("ok", ok)
	if opts != nil {
		if opts.ShippingOptions != nil {
			p.set("shipping_options", opts.ShippingOptions)
		}
		setOpt(p, "error_message", opts.ErrorMessage)
	}

	return Request{Method: "answerShippingQuery", Params: p}
}

// AnswerPreCheckoutQueryOptions represents optional parameters of
// answerPreCheckoutQuery. ErrorMessage is required when ok is false.
type AnswerPreCheckoutQueryOptions struct {
	ErrorMessage *string
}

// AnswerPreCheckoutQuery builds an answerPreCheckoutQuery request.
func AnswerPreCheckoutQuery(preCheckoutQueryID string, ok bool, opts *AnswerPreCheckoutQueryOptions) Request {
	p := params{}.set("pre_checkout_query_id", preCheckoutQueryID).set("ok", ok)
	if opts != nil {
		setOpt(p, "error_message", opts.ErrorMessage)
	}

	return Request{Method: "answerPreCheckoutQuery", Params: p}
}
