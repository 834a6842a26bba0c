package tsplib

// Instance is a TSPLIB problem read from a NODE_COORD_SECTION file.
type Instance struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Comment string `json:"comment"`

	Dimension       int         `json:"dimension"`
	EdgeWeightType  string      `json:"edge_weight_type"`
	NodeCoordinates [][]float64 `json:"node_coordinates"`
}

// Document is the JSON form of an instance as written by the converter.
type Document struct {
	Instance

	Source string   `json:"source,omitempty"`
	System *SysInfo `json:"system,omitempty"`
}

// SysInfo saves the basic system information
type SysInfo struct {
	Platform string `json:"platform"`
	CPU      string `json:"cpu"`
	RAM      string `json:"ram"`
}
