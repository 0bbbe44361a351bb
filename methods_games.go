package telegram

// SendGameOptions represents optional parameters of sendGame.
type SendGameOptions struct {
	DisableNotification *bool
	ReplyToMessageID    *int64
	ReplyMarkup         *InlineKeyboardMarkup
}

// SendGame builds a sendGame request. Games can only be sent to private
// chats, so the chat is identified by its numeric id.
func SendGame(chatID int64, gameShortName string, opts *SendGameOptions) Request {
	p := params{}.set("chat_id", chatID).set("game_short_name", gameShortName)
	if opts != nil {
		setOpt(p, "disable_notification", opts.DisableNotification)
		setOpt(p, "reply_to_message_id", opts.ReplyToMessageID)
		setOpt(p, "reply_markup", opts.ReplyMarkup)
	}

	return Request{Method: "sendGame", Params: p}
}

// SetGameScoreOptions represents optional parameters of setGameScore.
type SetGameScoreOptions struct {
	Force              *bool
	DisableEditMessage *bool
}

// SetGameScore builds a setGameScore request.
func SetGameScore(ref MessageRef, userID int64, score int, opts *SetGameScoreOptions) Request {
	p := params{}.set("user_id", userID).set("score", score)
	ref.apply(p)
	if opts != nil {
		setOpt(p, "force", opts.Force)
		setOpt(p, "disable_edit_message", opts.DisableEditMessage)
	}

	return Request{Method: "setGameScore", Params: p}
}

// GetGameHighScores builds a getGameHighScores request.
func GetGameHighScores(ref MessageRef, userID int64) Request {
	p := params{}.set("user_id", userID)
	ref.apply(p)

	return Request{Method: "getGameHighScores", Params: p}
}
