package telegram

// KickChatMemberOptions represents optional parameters of
// kickChatMember.
type KickChatMemberOptions struct {
	UntilDate *int64
}

// KickChatMember builds a kickChatMember request.
func KickChatMember(chatID ChatID, userID int64, opts *KickChatMemberOptions) Request {
	p := params{}.set("chat_id", chatID).set("user_id", userID)
	if opts != nil {
		setOpt(p, "until_date", opts.UntilDate)
	}

	return Request{Method: "kickChatMember", Params: p}
}

// UnbanChatMember builds an unbanChatMember request.
func UnbanChatMember(chatID ChatID, userID int64) Request {
	p := params{}.set("chat_id", chatID).set("user_id", userID)

	return Request{Method: "unbanChatMember", Params: p}
}

// RestrictChatMemberOptions represents optional parameters of
// restrictChatMember.
type RestrictChatMemberOptions struct {
	UntilDate *int64
}

// RestrictChatMember builds a restrictChatMember request.
func RestrictChatMember(chatID ChatID, userID int64, permissions ChatPermissions, opts *RestrictChatMemberOptions) Request {
	p := params{}.
		set("chat_id", chatID).
		set("user_id", userID).
		set("permissions", permissions)
	if opts != nil {
		setOpt(p, "until_date", opts.UntilDate)
	}

	return Request{Method: "restrictChatMember", Params: p}
}

// PromoteChatMemberOptions represents optional parameters of
// promoteChatMember. Pass false to demote the corresponding right.
type PromoteChatMemberOptions struct {
	CanChangeInfo      *bool
	CanPostMessages    *bool
	CanEditMessages    *bool
	CanDeleteMessages  *bool
	CanInviteUsers     *bool
	CanRestrictMembers *bool
	CanPinMessages     *bool
	CanPromoteMembers  *bool
}

// PromoteChatMember builds a promoteChatMember request.
func PromoteChatMember(chatID ChatID, userID int64, opts *PromoteChatMemberOptions) Request {
	p := params{}.set("chat_id", chatID).set("user_id", userID)
	if opts != nil {
		setOpt(p, "can_change_info", opts.CanChangeInfo)
		setOpt(p, "can_post_messages", opts.CanPostMessages)
		setOpt(p, "can_edit_messages", opts.CanEditMessages)
		setOpt(p, "can_delete_messages", opts.CanDeleteMessages)
		setOpt(p, "can_invite_users", opts.CanInviteUsers)
		setOpt(p, "can_restrict_members", opts.CanRestrictMembers)
		setOpt(p, "can_pin_messages", opts.CanPinMessages)
		setOpt(p, "can_promote_members", opts.CanPromoteMembers)
	}

	return Request{Method: "promoteChatMember", Params: p}
}

// SetChatAdministratorCustomTitle builds a
// setChatAdministratorCustomTitle request.
func SetChatAdministratorCustomTitle(chatID ChatID, userID int64, customTitle string) Request {
	p := params{}.
		set("chat_id", chatID).
		set("user_id", userID).
		set("custom_title", customTitle)

	return Request{Method: "setChatAdministratorCustomTitle", Params: p}
}

// SetChatPermissions builds a setChatPermissions request.
func SetChatPermissions(chatID ChatID, permissions ChatPermissions) Request {
	p := params{}.set("chat_id", chatID).set("permissions", permissions)

	return Request{Method: "setChatPermissions", Params: p}
}

// ExportChatInviteLink builds an exportChatInviteLink request.
func ExportChatInviteLink(chatID ChatID) Request {
	p := params{}.set("chat_id", chatID)

	return Request{Method: "exportChatInviteLink", Params: p}
}

// SetChatPhoto builds a setChatPhoto request. The photo cannot be reused
// by file_id or URL, only uploaded.
func SetChatPhoto(chatID ChatID, photo InputFile) Request {
	p := params{}.set("chat_id", chatID).set("photo", photo)

	return Request{Method: "setChatPhoto", Params: p}
}

// DeleteChatPhoto builds a deleteChatPhoto request.
func DeleteChatPhoto(chatID ChatID) Request {
	p := params{}.set("chat_id", chatID)

	return Request{Method: "deleteChatPhoto", Params: p}
}

// SetChatTitle builds a setChatTitle request.
func SetChatTitle(chatID ChatID, title string) Request {
	p := params{}.set("chat_id", chatID).set("title", title)

	return Request{Method: "setChatTitle", Params: p}
}

// SetChatDescription builds a setChatDescription request. An empty
// description removes the current one.
func SetChatDescription(chatID ChatID, description string) Request {
	p := params{}.set("chat_id", chatID).set("description", description)

	return Request{Method: "setChatDescription", Params: p}
}

// PinChatMessageOptions represents optional parameters of
// pinChatMessage.
type PinChatMessageOptions struct {
	DisableNotification *bool
}

// PinChatMessage builds a pinChatMessage request.
func PinChatMessage(chatID ChatID, messageID int64, opts *PinChatMessageOptions) Request {
	p := params{}.set("chat_id", chatID).set("message_id", messageID)
	if opts != nil {
		setOpt(p, "disable_notification", opts.DisableNotification)
	}

	return Request{Method: "pinChatMessage", Params: p}
}

// UnpinChatMessage builds an unpinChatMessage request.
func UnpinChatMessage(chatID ChatID) Request {
	p := params{}.set("chat_id", chatID)

	return Request{Method: "unpinChatMessage", Params: p}
}

// LeaveChat builds a leaveChat request.
func LeaveChat(chatID ChatID) Request {
	p := params{}.set("chat_id", chatID)

	return Request{Method: "leaveChat", Params: p}
}

// GetChat builds a getChat request.
func GetChat(chatID ChatID) Request {
	p := params{}.set("chat_id", chatID)

	return Request{Method: "getChat", Params: p}
}

// GetChatAdministrators builds a getChatAdministrators request.
func GetChatAdministrators(chatID ChatID) Request {
	p := params{}.set("chat_id", chatID)

	return Request{Method: "getChatAdministrators", Params: p}
}

// GetChatMembersCount builds a getChatMembersCount request.
func GetChatMembersCount(chatID ChatID) Request {
	p := params{}.set("chat_id", chatID)

	return Request{Method: "getChatMembersCount", Params: p}
}

// GetChatMember builds a getChatMember request.
func GetChatMember(chatID ChatID, userID int64) Request {
	p := params{}.set("chat_id", chatID).set("user_id", userID)

	return Request{Method: "getChatMember", Params: p}
}

// SetChatStickerSet builds a setChatStickerSet request.
func SetChatStickerSet(chatID ChatID, stickerSetName string) Request {
	p := params{}.set("chat_id", chatID).set("sticker_set_name", stickerSetName)

	return Request{Method: "setChatStickerSet", Params: p}
}

// DeleteChatStickerSet builds a deleteChatStickerSet request.
func DeleteChatStickerSet(chatID ChatID) Request {
	p := params{}.set("chat_id", chatID)

	return Request{Method: "deleteChatStickerSet", Params: p}
}

// AnswerCallbackQueryOptions represents optional parameters of
// answerCallbackQuery.
type AnswerCallbackQueryOptions struct {
	Text      *string
	ShowAlert *bool
	URL       *string
	CacheTime *int
}

// AnswerCallbackQuery builds an answerCallbackQuery request.
func AnswerCallbackQuery(callbackQueryID string, opts *AnswerCallbackQueryOptions) Request {
	p := params{}.set("callback_query_id", callbackQueryID)
	if opts != nil {
		setOpt(p, "text", opts.Text)
		setOpt(p, "show_alert", opts.ShowAlert)
		setOpt(p, "url", opts.URL)
		setOpt(p, "cache_time", opts.CacheTime)
	}

	return Request{Method: "answerCallbackQuery", Params: p}
}

// SetMyCommands builds a setMyCommands request.
func SetMyCommands(commands []BotCommand) Request {
	p := params{}.set("commands", commands)

	return Request{Method: "setMyCommands", Params: p}
}

// GetMyCommands builds a getMyCommands request.
func GetMyCommands() Request {
	return Request{Method: "getMyCommands", Params: params{}}
}
