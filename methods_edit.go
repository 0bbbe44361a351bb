package telegram

// MessageRef locates the message an edit applies to: a chat message by
// chat_id plus message_id, or an inline message by inline_message_id.
type MessageRef struct {
	ChatID          *ChatID
	MessageID       *int64
	InlineMessageID *string
}

// ChatMessage references a message sent directly to a chat.
func ChatMessage(chatID ChatID, messageID int64) MessageRef {
	return MessageRef{ChatID: &chatID, MessageID: &messageID}
}

// InlineMessage references a message sent via the bot in inline mode.
func InlineMessage(inlineMessageID string) MessageRef {
	return MessageRef{InlineMessageID: &inlineMessageID}
}

func (r MessageRef) apply(p params) {
	setOpt(p, "chat_id", r.ChatID)
	setOpt(p, "message_id", r.MessageID)
	setOpt(p, "inline_message_id", r.InlineMessageID)
}

// EditMessageTextOptions represents optional parameters of
// editMessageText.
type EditMessageTextOptions struct {
	ParseMode             *string
	DisableWebPagePreview *bool
	ReplyMarkup           *InlineKeyboardMarkup
}

// EditMessageText builds an editMessageText request.
func EditMessageText(ref MessageRef, text string, opts *EditMessageTextOptions) Request {
	p := params{}.set("text", text)
	ref.apply(p)
	if opts != nil {
		setOpt(p, "parse_mode", opts.ParseMode)
		setOpt(p, "disable_web_page_preview", opts.DisableWebPagePreview)
		setOpt(p, "reply_markup", opts.ReplyMarkup)
	}

	return Request{Method: "editMessageText", Params: p}
}

// EditMessageCaptionOptions represents optional parameters of
// editMessageCaption.
type EditMessageCaptionOptions struct {
	Caption     *string
	ParseMode   *string
	ReplyMarkup *InlineKeyboardMarkup
}

// EditMessageCaption builds an editMessageCaption request.
func EditMessageCaption(ref MessageRef, opts *EditMessageCaptionOptions) Request {
	p := params{}
	ref.apply(p)
	if opts != nil {
		setOpt(p, "caption", opts.Caption)
		setOpt(p, "parse_mode", opts.ParseMode)
		setOpt(p, "reply_markup", opts.ReplyMarkup)
	}

	return Request{Method: "editMessageCaption", Params: p}
}

// EditMessageMediaOptions represents optional parameters of
// editMessageMedia.
type EditMessageMediaOptions struct {
	ReplyMarkup *InlineKeyboardMarkup
}

// EditMessageMedia builds an editMessageMedia request.
func EditMessageMedia(ref MessageRef, media InputMedia, opts *EditMessageMediaOptions) Request {
	p := params{}.set("media", media)
	ref.apply(p)
	if opts != nil {
		setOpt(p, "reply_markup", opts.ReplyMarkup)
	}

	return Request{Method: "editMessageMedia", Params: p}
}

// EditMessageReplyMarkupOptions represents optional parameters of
// editMessageReplyMarkup.
type EditMessageReplyMarkupOptions struct {
	ReplyMarkup *InlineKeyboardMarkup
}

// EditMessageReplyMarkup builds an editMessageReplyMarkup request.
func EditMessageReplyMarkup(ref MessageRef, opts *EditMessageReplyMarkupOptions) Request {
	p := params{}
	ref.apply(p)
	if opts != nil {
		setOpt(p, "reply_markup", opts.ReplyMarkup)
	}

	return Request{Method: "editMessageReplyMarkup", Params: p}
}

// EditMessageLiveLocationOptions represents optional parameters of
// editMessageLiveLocation.
type EditMessageLiveLocationOptions struct {
	ReplyMarkup *InlineKeyboardMarkup
}

// EditMessageLiveLocation builds an editMessageLiveLocation request.
func EditMessageLiveLocation(ref MessageRef, latitude, longitude float64, opts *EditMessageLiveLocationOptions) Request {
	p := params{}.set("latitude", latitude).set("longitude", longitude)
	ref.apply(p)
	if opts != nil {
		setOpt(p, "reply_markup", opts.ReplyMarkup)
	}

	return Request{Method: "editMessageLiveLocation", Params: p}
}

// StopMessageLiveLocationOptions represents optional parameters of
// stopMessageLiveLocation.
type StopMessageLiveLocationOptions struct {
	ReplyMarkup *InlineKeyboardMarkup
}

// StopMessageLiveLocation builds a stopMessageLiveLocation request.
func StopMessageLiveLocation(ref MessageRef, opts *StopMessageLiveLocationOptions) Request {
	p := params{}
	ref.apply(p)
	if opts != nil {
		setOpt(p, "reply_markup", opts.ReplyMarkup)
	}

	return Request{Method: "stopMessageLiveLocation", Params: p}
}

// StopPollOptions represents optional parameters of stopPoll.
type StopPollOptions struct {
	ReplyMarkup *InlineKeyboardMarkup
}

// StopPoll builds a stopPoll request.
func StopPoll(chatID ChatID, messageID int64, opts *StopPollOptions) Request {
	p := params{}.set("chat_id", chatID).set("message_id", messageID)
	if opts != nil {
		setOpt(p, "reply_markup", opts.ReplyMarkup)
	}

	return Request{Method: "stopPoll", Params: p}
}

// DeleteMessage builds a deleteMessage request.
func DeleteMessage(chatID ChatID, messageID int64) Request {
	p := params{}.set("chat_id", chatID).set("message_id", messageID)

	return Request{Method: "deleteMessage", Params: p}
}
