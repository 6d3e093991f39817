package ipinfo

// apiResponse is the JSON body returned by GET https://ipinfo.io/{ip}.
// Fields are omitted by the API when unknown; bogon addresses carry only ip and bogon.
type apiResponse struct {
	IP       string `json:"ip"`
	Hostname string `json:"hostname"`
	City     string `json:"city"`
	Region   string `json:"region"`
	Country  string `json:"country"`
	Loc      string `json:"loc"`
	Org      string `json:"org"`
	Postal   string `json:"postal"`
	Timezone string `json:"timezone"`
	Bogon    bool   `json:"bogon"`
}

// apiError is the JSON body returned on non-2xx responses.
type apiError struct {
	Status int `json:"status"`
	Error  struct {
		Title   string `json:"title"`
		Message string `json:"message"`
	} `json:"error"`
}
