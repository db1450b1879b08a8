package summary

type UpdateSummaryDTO struct {
	Title   *string `json:"title"`
	Summary *string `json:"summary"`
}

const notFoundMessage = "Summary not found or access denied"
