package telegram

// SendStickerOptions represents optional parameters of sendSticker.
type SendStickerOptions struct {
	DisableNotification *bool
	ReplyToMessageID    *int64
	ReplyMarkup         ReplyMarkup
}

// SendSticker builds a sendSticker request.
func SendSticker(chatID ChatID, sticker FileOrString, opts *SendStickerOptions) Request {
	p := params{}.set("chat_id", chatID).set("sticker", sticker)
	if opts != nil {
		setOpt(p, "disable_notification", opts.DisableNotification)
		setOpt(p, "reply_to_message_id", opts.ReplyToMessageID)
		setOptAny(p, "reply_markup", opts.ReplyMarkup)
	}

	return Request{Method: "sendSticker", Params: p}
}

// GetStickerSet builds a getStickerSet request.
func GetStickerSet(name string) Request {
	p := params{}.set("name", name)

	return Request{Method: "getStickerSet", Params: p}
}

// UploadStickerFile builds an uploadStickerFile request. The sticker
// must be an uploaded PNG file.
func UploadStickerFile(userID int64, pngSticker InputFile) Request {
	p := params{}.set("user_id", userID).set("png_sticker", pngSticker)

	return Request{Method: "uploadStickerFile", Params: p}
}

// CreateNewStickerSetOptions represents optional parameters of
// createNewStickerSet. Exactly one of PNGSticker and TGSSticker must be
// set.
type CreateNewStickerSetOptions struct {
	PNGSticker    *FileOrString
	TGSSticker    *InputFile
	ContainsMasks *bool
	MaskPosition  *MaskPosition
}

// CreateNewStickerSet builds a createNewStickerSet request.
func CreateNewStickerSet(userID int64, name, title, emojis string, opts *CreateNewStickerSetOptions) Request {
	p := params{}.
		set("user_id", userID).
		set("name", name).
		set("title", title).
		set("emojis", emojis)
	if opts != nil {
		setOpt(p, "png_sticker", opts.PNGSticker)
		setOpt(p, "tgs_sticker", opts.TGSSticker)
		setOpt(p, "contains_masks", opts.ContainsMasks)
		setOpt(p, "mask_position", opts.MaskPosition)
	}

	return Request{Method: "createNewStickerSet", Params: p}
}

// AddStickerToSetOptions represents optional parameters of
// addStickerToSet. Exactly one of PNGSticker and TGSSticker must be set.
type AddStickerToSetOptions struct {
	PNGSticker   *FileOrString
	TGSSticker   *InputFile
	MaskPosition *MaskPosition
}

// AddStickerToSet builds an addStickerToSet request.
func AddStickerToSet(userID int64, name, emojis string, opts *AddStickerToSetOptions) Request {
	p := params{}.
		set("user_id", userID).
		set("name", name).
		set("emojis", emojis)
	if opts != nil {
		setOpt(p, "png_sticker", opts.PNGSticker)
		setOpt(p, "tgs_sticker", opts.TGSSticker)
		setOpt(p, "mask_position", opts.MaskPosition)
	}

	return Request{Method: "addStickerToSet", Params: p}
}

// SetStickerPositionInSet builds a setStickerPositionInSet request.
func SetStickerPositionInSet(sticker string, position int) Request {
	p := params{}.set("sticker", sticker).set("position", position)

	return Request{Method: "setStickerPositionInSet", Params: p}
}

// DeleteStickerFromSet builds a deleteStickerFromSet request.
func DeleteStickerFromSet(sticker string) Request {
	p := params{}.set("sticker", sticker)

	return Request{Method: "deleteStickerFromSet", Params: p}
}

// SetStickerSetThumbOptions represents optional parameters of
// setStickerSetThumb.
type SetStickerSetThumbOptions struct {
	Thumb *FileOrString
}

// SetStickerSetThumb builds a setStickerSetThumb request.
func SetStickerSetThumb(name string, userID int64, opts *SetStickerSetThumbOptions) Request {
	p := params{}.set("name", name).set("user_id", userID)
	if opts != nil {
		setOpt(p, "thumb", opts.Thumb)
	}

	return Request{Method: "setStickerSetThumb", Params: p}
}
