package filters

// ShareCreateParams is the body of the share card creation endpoint.
type ShareCreateParams struct {
	Puuid       string `json:"puuid" binding:"required"`
	DisplayName string `json:"displayName" binding:"required"`
}
