package huggingface

type inferenceOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type inferenceRequest struct {
	Inputs  string           `json:"inputs"`
	Options inferenceOptions `json:"options"`
}

// Image-output models answer with the picture pre-encoded under "image".
// Anything else (text models, nested tensors) is a shape this adapter does
// not try to auto-detect.
type inferenceResponse struct {
	Image string `json:"image"`
}
