package notion

// Wire shapes for the Notion API subset this tool uses: database query,
// page create, page update.

type dateFilter struct {
	Equals string `json:"equals"`
}

type propertyFilter struct {
	Property string     `json:"property"`
	Date     dateFilter `json:"date"`
}

type queryRequest struct {
	Filter propertyFilter `json:"filter"`
}

type queryResponse struct {
	Results []queryResult `json:"results"`
}

type queryResult struct {
	ID string `json:"id"`
}

type parentRef struct {
	DatabaseID string `json:"database_id"`
}

type createPageRequest struct {
	Parent     parentRef      `json:"parent"`
	Properties map[string]any `json:"properties"`
}

type updatePageRequest struct {
	Properties map[string]any `json:"properties"`
}
