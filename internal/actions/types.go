package actions

// Parameter is one name/value pair from the inbound action request.
type Parameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Request is the inbound action invocation.
type Request struct {
	ActionGroup    string      `json:"actionGroup"`
	Function       string      `json:"function"`
	MessageVersion int         `json:"messageVersion"`
	Parameters     []Parameter `json:"parameters"`
}

// ParamMap flattens the parameter list into a mapping. On duplicate names
// the last occurrence wins; the wire contract leaves the tie-break
// undefined, so this is the documented choice.
func (r Request) ParamMap() map[string]string {
	params := make(map[string]string, len(r.Parameters))
	for _, p := range r.Parameters {
		params[p.Name] = p.Value
	}
	return params
}

// Response is the success envelope echoed back to the caller.
type Response struct {
	Response       ResponsePayload `json:"response"`
	MessageVersion int             `json:"messageVersion"`
}

// ResponsePayload echoes the action identity and carries the text body.
type ResponsePayload struct {
	ActionGroup      string           `json:"actionGroup"`
	Function         string           `json:"function"`
	FunctionResponse FunctionResponse `json:"functionResponse"`
}

// FunctionResponse wraps the response body.
type FunctionResponse struct {
	ResponseBody ResponseBody `json:"responseBody"`
}

// ResponseBody carries the TEXT content type.
type ResponseBody struct {
	Text TextBody `json:"TEXT"`
}

// TextBody is the flattened text result: lines joined by a blank line.
type TextBody struct {
	Body string `json:"body"`
}

// ErrorResponse is the top-level failure shape, used only for
// parameter-parsing failures before any operation runs.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}
