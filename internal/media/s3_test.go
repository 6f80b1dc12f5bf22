package media

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type s3Stub struct {
	objects map[string][]byte
	putErr  error
	listed  [][]types.Object
	calls   int
}

func newS3Stub() *s3Stub {
	return &s3Stub{objects: make(map[string][]byte)}
}

func (s *s3Stub) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if s.putErr != nil {
		return nil, s.putErr
	}
	buf := make([]byte, 0)
	if in.Body != nil {
		tmp := make([]byte, 64)
		for {
			n, err := in.Body.Read(tmp)
			buf = append(buf, tmp[:n]...)
			if err != nil {
				break
			}
		}
	}
	s.objects[aws.ToString(in.Key)] = buf
	return &s3.PutObjectOutput{}, nil
}

func (s *s3Stub) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(s.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func (s *s3Stub) HeadObject(ctx context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if _, ok := s.objects[aws.ToString(in.Key)]; !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func (s *s3Stub) ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	if len(s.listed) > 0 {
		page := s.listed[s.calls]
		s.calls++
		truncated := s.calls < len(s.listed)
		return &s3.ListObjectsV2Output{
			Contents:              page,
			IsTruncated:           aws.Bool(truncated),
			NextContinuationToken: aws.String("next"),
		}, nil
	}
	out := &s3.ListObjectsV2Output{IsTruncated: aws.Bool(false)}
	for key := range s.objects {
		out.Contents = append(out.Contents, types.Object{Key: aws.String(key)})
	}
	return out, nil
}

func newTestS3Store(stub *s3Stub) *S3Store {
	return &S3Store{client: stub, bucket: "media", baseURL: "https://media.s3.eu-central-1.amazonaws.com/" + s3KeyPrefix}
}

func TestS3StoreSaveExistsDelete(t *testing.T) {
	stub := newS3Stub()
	store := newTestS3Store(stub)
	ctx := context.Background()

	if err := store.Save(ctx, "user_1_1.png", []byte("img")); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if string(stub.objects[s3KeyPrefix+"user_1_1.png"]) != "img" {
		t.Fatalf("object not stored under prefixed key: %v", stub.objects)
	}

	exists, err := store.Exists(ctx, "user_1_1.png")
	if err != nil || !exists {
		t.Fatalf("expected object to exist, got (%v, %v)", exists, err)
	}

	deleted, err := store.Delete(ctx, "user_1_1.png")
	if err != nil || !deleted {
		t.Fatalf("expected delete to succeed, got (%v, %v)", deleted, err)
	}
	deleted, err = store.Delete(ctx, "user_1_1.png")
	if err != nil || deleted {
		t.Fatalf("expected second delete to be a no-op, got (%v, %v)", deleted, err)
	}
}

func TestS3StoreRejectsUnsafeNames(t *testing.T) {
	store := newTestS3Store(newS3Stub())
	if err := store.Save(context.Background(), "../escape.png", nil); err != ErrUnsafeName {
		t.Fatalf("expected ErrUnsafeName, got %v", err)
	}
}

func TestS3StoreSaveError(t *testing.T) {
	stub := newS3Stub()
	stub.putErr = errors.New("boom")
	store := newTestS3Store(stub)
	if err := store.Save(context.Background(), "user_1_1.png", []byte("x")); err == nil {
		t.Fatal("expected save error")
	}
}

func TestS3StoreListPaginates(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	stub := newS3Stub()
	stub.listed = [][]types.Object{
		{{Key: aws.String(s3KeyPrefix + "a.png"), LastModified: aws.Time(now)}},
		{{Key: aws.String(s3KeyPrefix + "b.jpg"), LastModified: aws.Time(now)}},
	}
	store := newTestS3Store(stub)

	entries, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries across pages, got %d", len(entries))
	}
	if entries[0].Name != "a.png" || entries[1].Name != "b.jpg" {
		t.Fatalf("unexpected entries %+v", entries)
	}
	if !entries[0].ModTime.Equal(now) {
		t.Fatalf("expected mod time to be carried over, got %v", entries[0].ModTime)
	}
}

func TestS3StoreURL(t *testing.T) {
	store := newTestS3Store(newS3Stub())
	want := "https://media.s3.eu-central-1.amazonaws.com/profile_pics/user_1_1.png"
	if got := store.URL("user_1_1.png"); got != want {
		t.Fatalf("unexpected url %q", got)
	}
}
