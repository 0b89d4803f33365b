package types

// FeedHeader mirrors the OEM document header.
type FeedHeader struct {
	CreationDate string `json:"creation_date" example:"2024-080T04:05:10.110Z"`
	Originator   string `json:"originator" example:"JSC"`
}

// FeedMetadata mirrors the OEM segment metadata block.
type FeedMetadata struct {
	ObjectName string `json:"object_name" example:"ISS"`
	ObjectID   string `json:"object_id" example:"1998-067-A"`
	CenterName string `json:"center_name" example:"EARTH"`
	RefFrame   string `json:"ref_frame" example:"EME2000"`
	TimeSystem string `json:"time_system" example:"UTC"`
	StartTime  string `json:"start_time"`
	StopTime   string `json:"stop_time"`
}
