package install

import "encoding/json"

// AssetIndex maps logical asset names to content-addressed object hashes,
// per spec.md §3/§6.
type AssetIndex struct {
	Objects map[string]struct {
		Hash string `json:"hash"`
		Size int64  `json:"size"`
	} `json:"objects"`
}

func parseAssetIndex(data []byte) (*AssetIndex, error) {
	var idx AssetIndex
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, err
	}
	return &idx, nil
}
