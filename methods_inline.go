package telegram

// AnswerInlineQueryOptions represents optional parameters of
// answerInlineQuery.
type AnswerInlineQueryOptions struct {
	CacheTime         *int
	IsPersonal        *bool
	NextOffset        *string
	SwitchPMText      *string
	SwitchPMParameter *string
}

// AnswerInlineQuery builds an answerInlineQuery request. No more than 50
// results per query are accepted by the API.
func AnswerInlineQuery(inlineQueryID string, results []InlineQueryResult, opts *AnswerInlineQueryOptions) Request {
	p := params{}.set("inline_query_id", inlineQueryID).set("results", results)
	if opts != nil {
		setOpt(p, "cache_time", opts.CacheTime)
		setOpt(p, "is_personal", opts.IsPersonal)
		setOpt(p, "next_offset", opts.NextOffset)
		setOpt(p, "switch_pm_text", opts.SwitchPMText)
		setOpt(p, "switch_pm_parameter", opts.SwitchPMParameter)
	}

	return Request{Method: "answerInlineQuery", Params: p}
}
