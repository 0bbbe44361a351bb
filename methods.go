package telegram

// GetUpdatesOptions represents optional parameters of getUpdates.
type GetUpdatesOptions struct {
	Offset         *int64
	Limit          *int
	Timeout        *int
	AllowedUpdates []string
}

// GetUpdates builds a getUpdates request.
func GetUpdates(opts *GetUpdatesOptions) Request {
	p := params{}
	if opts != nil {
		setOpt(p, "offset", opts.Offset)
		setOpt(p, "limit", opts.Limit)
		setOpt(p, "timeout", opts.Timeout)
		if opts.AllowedUpdates != nil {
			p.set("allowed_updates", opts.AllowedUpdates)
		}
	}

	return Request{Method: "getUpdates", Params: p}
}

// SetWebhookOptions represents optional parameters of setWebhook.
type SetWebhookOptions struct {
	Certificate    *InputFile
	MaxConnections *int
	AllowedUpdates []string
}

// SetWebhook builds a setWebhook request.
func SetWebhook(url string, opts *SetWebhookOptions) Request {
	p := params{}.set("url", url)
	if opts != nil {
		setOpt(p, "certificate", opts.Certificate)
		setOpt(p, "max_connections", opts.MaxConnections)
		if opts.AllowedUpdates != nil {
			p.set("allowed_updates", opts.AllowedUpdates)
		}
	}

	return Request{Method: "setWebhook", Params: p}
}

// DeleteWebhook builds a deleteWebhook request.
func DeleteWebhook() Request {
	return Request{Method: "deleteWebhook", Params: params{}}
}

// GetWebhookInfo builds a getWebhookInfo request.
func GetWebhookInfo() Request {
	return Request{Method: "getWebhookInfo", Params: params{}}
}

// GetMe builds a getMe request.
func GetMe() Request {
	return Request{Method: "getMe", Params: params{}}
}

// SendMessageOptions represents optional parameters of sendMessage.
type SendMessageOptions struct {
	ParseMode             *string
	DisableWebPagePreview *bool
	DisableNotification   *bool
	ReplyToMessageID      *int64
	ReplyMarkup           ReplyMarkup
}

// SendMessage builds a sendMessage request to send a text message.
func SendMessage(chatID ChatID, text string, opts *SendMessageOptions) Request {
	p := params{}.set("chat_id", chatID).set("text", text)
	if opts != nil {
		setOpt(p, "parse_mode", opts.ParseMode)
		setOpt(p, "disable_web_page_preview", opts.DisableWebPagePreview)
		setOpt(p, "disable_notification", opts.DisableNotification)
		setOpt(p, "reply_to_message_id", opts.ReplyToMessageID)
		setOptAny(p, "reply_markup", opts.ReplyMarkup)
	}

	return Request{Method: "sendMessage", Params: p}
}

// ForwardMessageOptions represents optional parameters of
// forwardMessage.
type ForwardMessageOptions struct {
	DisableNotification *bool
}

// ForwardMessage builds a forwardMessage request.
func ForwardMessage(chatID, fromChatID ChatID, messageID int64, opts *ForwardMessageOptions) Request {
	p := params{}.
		set("chat_id", chatID).
		set("from_chat_id", fromChatID).
		set("message_id", messageID)
	if opts != nil {
		setOpt(p, "disable_notification", opts.DisableNotification)
	}

	return Request{Method: "forwardMessage", Params: p}
}

// SendPhotoOptions represents optional parameters of sendPhoto.
type SendPhotoOptions struct {
	Caption             *string
	ParseMode           *string
	DisableNotification *bool
	ReplyToMessageID    *int64
	ReplyMarkup         ReplyMarkup
}

// SendPhoto builds a sendPhoto request.
func SendPhoto(chatID ChatID, photo FileOrString, opts *SendPhotoOptions) Request {
	p := params{}.set("chat_id", chatID).set("photo", photo)
	if opts != nil {
		setOpt(p, "caption", opts.Caption)
		setOpt(p, "parse_mode", opts.ParseMode)
		setOpt(p, "disable_notification", opts.DisableNotification)
		setOpt(p, "reply_to_message_id", opts.ReplyToMessageID)
		setOptAny(p, "reply_markup", opts.ReplyMarkup)
	}

	return Request{Method: "sendPhoto", Params: p}
}

// SendAudioOptions represents optional parameters of sendAudio.
type SendAudioOptions struct {
	Caption             *string
	ParseMode           *string
	Duration            *int
	Performer           *string
	Title               *string
	Thumb               *FileOrString
	DisableNotification *bool
	ReplyToMessageID    *int64
	ReplyMarkup         ReplyMarkup
}

// SendAudio builds a sendAudio request.
func SendAudio(chatID ChatID, audio FileOrString, opts *SendAudioOptions) Request {
	p := params{}.set("chat_id", chatID).set("audio", audio)
	if opts != nil {
		setOpt(p, "caption", opts.Caption)
		setOpt(p, "parse_mode", opts.ParseMode)
		setOpt(p, "duration", opts.Duration)
		setOpt(p, "performer", opts.Performer)
		setOpt(p, "title", opts.Title)
		setOpt(p, "thumb", opts.Thumb)
		setOpt(p, "disable_notification", opts.DisableNotification)
		setOpt(p, "reply_to_message_id", opts.ReplyToMessageID)
		setOptAny(p, "reply_markup", opts.ReplyMarkup)
	}

	return Request{Method: "sendAudio", Params: p}
}

// SendDocumentOptions represents optional parameters of sendDocument.
type SendDocumentOptions struct {
	Thumb               *FileOrString
	Caption             *string
	ParseMode           *string
	DisableNotification *bool
	ReplyToMessageID    *int64
	ReplyMarkup         ReplyMarkup
}

// SendDocument builds a sendDocument request.
func SendDocument(chatID ChatID, document FileOrString, opts *SendDocumentOptions) Request {
	p := params{}.set("chat_id", chatID).set("document", document)
	if opts != nil {
		setOpt(p, "thumb", opts.Thumb)
		setOpt(p, "caption", opts.Caption)
		setOpt(p, "parse_mode", opts.ParseMode)
		setOpt(p, "disable_notification", opts.DisableNotification)
		setOpt(p, "reply_to_message_id", opts.ReplyToMessageID)
		setOptAny(p, "reply_markup", opts.ReplyMarkup)
	}

	return Request{Method: "sendDocument", Params: p}
}

// SendVideoOptions represents optional parameters of sendVideo.
type SendVideoOptions struct {
	Duration            *int
	Width               *int
	Height              *int
	Thumb               *FileOrString
	Caption             *string
	ParseMode           *string
	SupportsStreaming   *bool
	DisableNotification *bool
	ReplyToMessageID    *int64
	ReplyMarkup         ReplyMarkup
}

// SendVideo builds a sendVideo request.
func SendVideo(chatID ChatID, video FileOrString, opts *SendVideoOptions) Request {
	p := params{}.set("chat_id", chatID).set("video", video)
	if opts != nil {
		setOpt(p, "duration", opts.Duration)
		setOpt(p, "width", opts.Width)
		setOpt(p, "height", opts.Height)
		setOpt(p, "thumb", opts.Thumb)
		setOpt(p, "caption", opts.Caption)
		setOpt(p, "parse_mode", opts.ParseMode)
		setOpt(p, "supports_streaming", opts.SupportsStreaming)
		setOpt(p, "disable_notification", opts.DisableNotification)
		setOpt(p, "reply_to_message_id", opts.ReplyToMessageID)
		setOptAny(p, "reply_markup", opts.ReplyMarkup)
	}

	return Request{Method: "sendVideo", Params: p}
}

// SendAnimationOptions represents optional parameters of sendAnimation.
type SendAnimationOptions struct {
	Duration            *int
	Width               *int
	Height              *int
	Thumb               *FileOrString
	Caption             *string
	ParseMode           *string
	DisableNotification *bool
	ReplyToMessageID    *int64
	ReplyMarkup         ReplyMarkup
}

// SendAnimation builds a sendAnimation request.
func SendAnimation(chatID ChatID, animation FileOrString, opts *SendAnimationOptions) Request {
	p := params{}.set("chat_id", chatID).set("animation", animation)
	if opts != nil {
		setOpt(p, "duration", opts.Duration)
		setOpt(p, "width", opts.Width)
		setOpt(p, "height", opts.Height)
		setOpt(p, "thumb", opts.Thumb)
		setOpt(p, "caption", opts.Caption)
		setOpt(p, "parse_mode", opts.ParseMode)
		setOpt(p, "disable_notification", opts.DisableNotification)
		setOpt(p, "reply_to_message_id", opts.ReplyToMessageID)
		setOptAny(p, "reply_markup", opts.ReplyMarkup)
	}

	return Request{Method: "sendAnimation", Params: p}
}

// SendVoiceOptions represents optional parameters of sendVoice.
type SendVoiceOptions struct {
	Caption             *string
	ParseMode           *string
	Duration            *int
	DisableNotification *bool
	ReplyToMessageID    *int64
	ReplyMarkup         ReplyMarkup
}

// SendVoice builds a sendVoice request.
func SendVoice(chatID ChatID, voice FileOrString, opts *SendVoiceOptions) Request {
	p := params{}.set("chat_id", chatID).set("voice", voice)
	if opts != nil {
		setOpt(p, "caption", opts.Caption)
		setOpt(p, "parse_mode", opts.ParseMode)
		setOpt(p, "duration", opts.Duration)
		setOpt(p, "disable_notification", opts.DisableNotification)
		setOpt(p, "reply_to_message_id", opts.ReplyToMessageID)
		setOptAny(p, "reply_markup", opts.ReplyMarkup)
	}

	return Request{Method: "sendVoice", Params: p}
}

// SendVideoNoteOptions represents optional parameters of sendVideoNote.
type SendVideoNoteOptions struct {
	Duration            *int
	Length              *int
	Thumb               *FileOrString
	DisableNotification *bool
	ReplyToMessageID    *int64
	ReplyMarkup         ReplyMarkup
}

// SendVideoNote builds a sendVideoNote request.
func SendVideoNote(chatID ChatID, videoNote FileOrString, opts *SendVideoNoteOptions) Request {
	p := params{}.set("chat_id", chatID).set("video_note", videoNote)
	if opts != nil {
		setOpt(p, "duration", opts.Duration)
		setOpt(p, "length", opts.Length)
		setOpt(p, "thumb", opts.Thumb)
		setOpt(p, "disable_notification", opts.DisableNotification)
		setOpt(p, "reply_to_message_id", opts.ReplyToMessageID)
		setOptAny(p, "reply_markup", opts.ReplyMarkup)
	}

	return Request{Method: "sendVideoNote", Params: p}
}

// SendMediaGroupOptions represents optional parameters of
// sendMediaGroup.
type SendMediaGroupOptions struct {
	DisableNotification *bool
	ReplyToMessageID    *int64
}

// SendMediaGroup builds a sendMediaGroup request to send an album of
// photos and videos.
func SendMediaGroup(chatID ChatID, media []InputMedia, opts *SendMediaGroupOptions) Request {
	p := params{}.set("chat_id", chatID).set("media", media)
	if opts != nil {
		setOpt(p, "disable_notification", opts.DisableNotification)
		setOpt(p, "reply_to_message_id", opts.ReplyToMessageID)
	}

	return Request{Method: "sendMediaGroup", Params: p}
}

// SendLocationOptions represents optional parameters of sendLocation.
type SendLocationOptions struct {
	LivePeriod          *int
	DisableNotification *bool
	ReplyToMessageID    *int64
	ReplyMarkup         ReplyMarkup
}

// SendLocation builds a sendLocation request.
func SendLocation(chatID ChatID, latitude, longitude float64, opts *SendLocationOptions) Request {
	p := params{}.
		set("chat_id", chatID).
		set("latitude", latitude).
		set("longitude", longitude)
	if opts != nil {
		setOpt(p, "live_period", opts.LivePeriod)
		setOpt(p, "disable_notification", opts.DisableNotification)
		setOpt(p, "reply_to_message_id", opts.ReplyToMessageID)
		setOptAny(p, "reply_markup", opts.ReplyMarkup)
	}

	return Request{Method: "sendLocation", Params: p}
}

// SendVenueOptions represents optional parameters of sendVenue.
type SendVenueOptions struct {
	FoursquareID        *string
	FoursquareType      *string
	DisableNotification *bool
	ReplyToMessageID    *int64
	ReplyMarkup         ReplyMarkup
}

// SendVenue builds a sendVenue request.
func SendVenue(chatID ChatID, latitude, longitude float64, title, address string, opts *SendVenueOptions) Request {
	p := params{}.
		set("chat_id", chatID).
		set("latitude", latitude).
		set("longitude", longitude).
		set("title", title).
		set("address", address)
	if opts != nil {
		setOpt(p, "foursquare_id", opts.FoursquareID)
		setOpt(p, "foursquare_type", opts.FoursquareType)
		setOpt(p, "disable_notification", opts.DisableNotification)
		setOpt(p, "reply_to_message_id", opts.ReplyToMessageID)
		setOptAny(p, "reply_markup", opts.ReplyMarkup)
	}

	return Request{Method: "sendVenue", Params: p}
}

// SendContactOptions represents optional parameters of sendContact.
type SendContactOptions struct {
	LastName            *string
	VCard               *string
	DisableNotification *bool
	ReplyToMessageID    *int64
	ReplyMarkup         ReplyMarkup
}

// SendContact builds a sendContact request.
func SendContact(chatID ChatID, phoneNumber, firstName string, opts *SendContactOptions) Request {
	p := params{}.
		set("chat_id", chatID).
		set("phone_number", phoneNumber).
		set("first_name", firstName)
	if opts != nil {
		setOpt(p, "last_name", opts.LastName)
		setOpt(p, "vcard", opts.VCard)
		setOpt(p, "disable_notification", opts.DisableNotification)
		setOpt(p, "reply_to_message_id", opts.ReplyToMessageID)
		setOptAny(p, "reply_markup", opts.ReplyMarkup)
	}

	return Request{Method: "sendContact", Params: p}
}

// SendPollOptions represents optional parameters of sendPoll.
type SendPollOptions struct {
	IsAnonymous           *bool
	Type                  *string
	AllowsMultipleAnswers *bool
	CorrectOptionID       *int
	IsClosed              *bool
	DisableNotification   *bool
	ReplyToMessageID      *int64
	ReplyMarkup           ReplyMarkup
}

// SendPoll builds a sendPoll request.
func SendPoll(chatID ChatID, question string, options []string, opts *SendPollOptions) Request {
	p := params{}.
		set("chat_id", chatID).
		set("question", question).
		set("options", options)
	if opts != nil {
		setOpt(p, "is_anonymous", opts.IsAnonymous)
		setOpt(p, "type", opts.Type)
		setOpt(p, "allows_multiple_answers", opts.AllowsMultipleAnswers)
		setOpt(p, "correct_option_id", opts.CorrectOptionID)
		setOpt(p, "is_closed", opts.IsClosed)
		setOpt(p, "disable_notification", opts.DisableNotification)
		setOpt(p, "reply_to_message_id", opts.ReplyToMessageID)
		setOptAny(p, "reply_markup", opts.ReplyMarkup)
	}

	return Request{Method: "sendPoll", Params: p}
}

// SendDiceOptions represents optional parameters of sendDice.
type SendDiceOptions struct {
	DisableNotification *bool
	ReplyToMessageID    *int64
	ReplyMarkup         ReplyMarkup
}

// SendDice builds a sendDice request.
func SendDice(chatID ChatID, opts *SendDiceOptions) Request {
	p := params{}.set("chat_id", chatID)
	if opts != nil {
		setOpt(p, "disable_notification", opts.DisableNotification)
		setOpt(p, "reply_to_message_id", opts.ReplyToMessageID)
		setOptAny(p, "reply_markup", opts.ReplyMarkup)
	}

	return Request{Method: "sendDice", Params: p}
}

// SendChatAction builds a sendChatAction request. Action is one of the
// values the Bot API documents for the method ("typing", "upload_photo"
// and so on).
func SendChatAction(chatID ChatID, action string) Request {
	p := params{}.set("chat_id", chatID).set("action", action)

	return Request{Method: "sendChatAction", Params: p}
}

// GetUserProfilePhotosOptions represents optional parameters of
// getUserProfilePhotos.
type GetUserProfilePhotosOptions struct {
	Offset *int
	Limit  *int
}

// GetUserProfilePhotos builds a getUserProfilePhotos request.
func GetUserProfilePhotos(userID int64, opts *GetUserProfilePhotosOptions) Request {
	p := params{}.set("user_id", userID)
	if opts != nil {
		setOpt(p, "offset", opts.Offset)
		setOpt(p, "limit", opts.Limit)
	}

	return Request{Method: "getUserProfilePhotos", Params: p}
}

// GetFile builds a getFile request.
func GetFile(fileID string) Request {
	p := params{}.set("file_id", fileID)

	return Request{Method: "getFile", Params: p}
}
