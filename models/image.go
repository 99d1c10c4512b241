package models

// ImageItem tracks one trailer photo through its upload lifecycle: created
// with Uploading=true on selection, flipped to Uploaded=true with a server
// URL once the upload resolves, or removed by the user before that.
type ImageItem struct {
	ID        string `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	Preview   string `bson:"preview,omitempty" json:"preview,omitempty"`
	Size      int64  `bson:"size,omitempty" json:"size,omitempty"`
	URL       string `bson:"url,omitempty" json:"url,omitempty"`
	Uploading bool   `bson:"uploading" json:"uploading"`
	Uploaded  bool   `bson:"uploaded" json:"uploaded"`
}

// TrailerImage is the persisted/wire representation of a confirmed upload.
// PublicID is the storage backend's handle, kept so the asset can be removed
// when the trailer goes away. Images published before it was recorded have
// only a URL.
type TrailerImage struct {
	URL      string `bson:"url" json:"url"`
	PublicID string `bson:"publicId,omitempty" json:"publicId,omitempty"`
}
