package responses

// StatisticsResponse aggregates the active representative population.
type StatisticsResponse struct {
	TotalRepresentatives    int               `json:"total_representatives"`
	TotalCandidates         int               `json:"total_candidates"`
	TotalElected            int               `json:"total_elected"`
	TotalFormer             int               `json:"total_former"`
	TotalDistinguished      int               `json:"total_distinguished"`
	TotalGovernorates       int               `json:"total_governorates"`
	TotalDistricts          int               `json:"total_districts"`
	TotalParties            int               `json:"total_parties"`
	AverageRating           float64           `json:"average_rating"`
	TotalSolvedComplaints   int64             `json:"total_solved_complaints"`
	TotalReceivedComplaints int64             `json:"total_received_complaints"`
	GovernorateStats        []GovernorateStat `json:"governorate_stats"`
	GenderStats             GenderStats       `json:"gender_stats"`
	StatusStats             StatusStats       `json:"status_stats"`
}

type GovernorateStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type GenderStats struct {
	Male   int `json:"male"`
	Female int `json:"female"`
}

type StatusStats struct {
	Candidate int `json:"candidate"`
	Elected   int `json:"elected"`
	Former    int `json:"former"`
}

// ListStats summarises the filtered set returned by the representative list.
type ListStats struct {
	TotalCount         int64 `json:"total_count"`
	DistinguishedCount int64 `json:"distinguished_count"`
	MaleCount          int64 `json:"male_count"`
	FemaleCount        int64 `json:"female_count"`
}

// RepresentativeListResponse is the paginated envelope plus ListStats.
type RepresentativeListResponse struct {
	Count    int64                    `json:"count"`
	Next     *string                  `json:"next"`
	Previous *string                  `json:"previous"`
	Results  []RepresentativeListItem `json:"results"`
	Stats    ListStats                `json:"stats"`
}

type SearchResponse struct {
	Representatives []RepresentativeListItem `json:"representatives"`
	TotalCount      int64                    `json:"total_count"`
	PageCount       int                      `json:"page_count"`
	CurrentPage     int                      `json:"current_page"`
	HasNext         bool                     `json:"has_next"`
	HasPrevious     bool                     `json:"has_previous"`
}

type FilterOptionsResponse struct {
	Governorates []GovernorateResponse `json:"governorates"`
	Parties      []PartyResponse       `json:"parties"`
	Districts    []DistrictResponse    `json:"districts"`
	Genders      []ChoiceResponse      `json:"genders"`
	Statuses     []ChoiceResponse      `json:"statuses"`
}

type ChoiceResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
