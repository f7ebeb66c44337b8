package dataset

import "context"

// objectGetter is the slice of the object-store client this source needs;
// *s3x.Client satisfies it.
type objectGetter interface {
	GetObject(ctx context.Context, key string) ([]byte, error)
}

// S3Source reads the dataset object from the bucket.
type S3Source struct {
	client objectGetter
	key    string
}

func NewS3Source(client objectGetter, key string) *S3Source {
	return &S3Source{client: client, key: key}
}

func (s *S3Source) Load(ctx context.Context) ([]byte, error) {
	return s.client.GetObject(ctx, s.key)
}
