package remote

import "fmt"

// AssetPath derives the storage path for one resolution of an item's photo:
// {ownerId}/collections/{collectionId}/{itemId}/{resolution}.jpg. The same
// inputs always yield the same path, so re-uploads overwrite in place.
func (c *HTTPClient) AssetPath(collectionID, itemID, resolution string) string {
	return fmt.Sprintf("%s/collections/%s/%s/%s.jpg", c.ownerID, collectionID, itemID, resolution)
}
