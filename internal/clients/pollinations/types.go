package pollinations

type generateRequest struct {
	Prompt string `json:"prompt"`
}

// One of the two fields is usually set; neither being present is tolerated
// and yields an empty result.
type generateResponse struct {
	Image string `json:"image"` // inline data URI
	Url   string `json:"url"`   // reference requiring a second fetch
}
