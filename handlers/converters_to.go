package handlers

import (
	"mymultichain/domain"
)

// InstanceInfo is one entry of InstancesResponse.
type InstanceInfo struct {
	Id    string `json:"id"`
	Title string `json:"title"`
	Url   string `json:"url"`
}

// InstancesResponse is the body of GET /v1/instances.
type InstancesResponse struct {
	Instances []InstanceInfo `json:"instances"`
}

// toInstancesResponse converts domain instances to API response.
func toInstancesResponse(instances []domain.Instance) InstancesResponse {
	out := make([]InstanceInfo, 0, len(instances))
	for _, i := range instances {
		out = append(out, InstanceInfo{
			Id:    i.ID,
			Title: i.Title,
			Url:   i.URL.String(),
		})
	}
	return InstancesResponse{Instances: out}
}

// toProxyPathAndQuery returns the suffix appended to every instance URL: the escaped path plus the raw
// query. A bare "/" without a query means no suffix, so instances are called on their base URL.
func toProxyPathAndQuery(escapedPath, rawQuery string) string {
	if rawQuery == "" {
		if escapedPath == "" || escapedPath == "/" {
			return ""
		}
		return escapedPath
	}
	if escapedPath == "" {
		escapedPath = "/"
	}
	return escapedPath + "?" + rawQuery
}
