package telegram

// SetPassportDataErrors builds a setPassportDataErrors request. The user
// will not be able to resend the elements until the errors are fixed.
func SetPassportDataErrors(userID int64, errors []PassportElementError) Request {
	p := params{}.set("user_id", userID).set("errors", errors)

	return Request{Method: "setPassportDataErrors", Params: p}
}
