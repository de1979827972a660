package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeS3 struct {
	put     *s3.PutObjectInput
	body    string
	deleted []string
	err     error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.put = params
	b, _ := io.ReadAll(params.Body)
	f.body = string(b)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deleted = append(f.deleted, *params.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestCloudflareStorage_Upload(t *testing.T) {
	client := &fakeS3{}
	s := newCloudflareStorage(client, "gallery", "https://cdn.example.com/")

	url, err := s.Upload(context.Background(), "users/1/a.png", strings.NewReader("png"), 3, "image/png")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if url != "https://cdn.example.com/users/1/a.png" {
		t.Errorf("url = %q", url)
	}
	if *client.put.Bucket != "gallery" || *client.put.Key != "users/1/a.png" {
		t.Errorf("unexpected input: bucket=%s key=%s", *client.put.Bucket, *client.put.Key)
	}
	if *client.put.ContentType != "image/png" || *client.put.ContentLength != 3 {
		t.Errorf("unexpected content headers: %s %d", *client.put.ContentType, *client.put.ContentLength)
	}
	if client.body != "png" {
		t.Errorf("body = %q", client.body)
	}
}

func TestCloudflareStorage_UploadError(t *testing.T) {
	client := &fakeS3{err: errors.New("boom")}
	s := newCloudflareStorage(client, "gallery", "https://cdn.example.com")

	if _, err := s.Upload(context.Background(), "k", strings.NewReader(""), 0, "image/png"); err == nil {
		t.Fatal("expected error")
	}
}

func TestCloudflareStorage_Delete(t *testing.T) {
	client := &fakeS3{}
	s := newCloudflareStorage(client, "gallery", "https://cdn.example.com")

	if err := s.Delete(context.Background(), "users/1/a.png"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(client.deleted) != 1 || client.deleted[0] != "users/1/a.png" {
		t.Errorf("deleted = %v", client.deleted)
	}
}

func TestCloudflareStorage_KeyFromURL(t *testing.T) {
	s := newCloudflareStorage(&fakeS3{}, "gallery", "https://cdn.example.com")

	tests := []struct {
		url    string
		key    string
		wantOK bool
	}{
		{"https://cdn.example.com/users/1/a.png", "users/1/a.png", true},
		{"https://cdn.example.com/", "", false},
		{"https://cdn.example.com.evil.io/x.png", "", false},
		{"https://images.unsplash.com/photo-1", "", false},
	}

	for _, tt := range tests {
		key, ok := s.KeyFromURL(tt.url)
		if ok != tt.wantOK || key != tt.key {
			t.Errorf("KeyFromURL(%q) = %q, %v; want %q, %v", tt.url, key, ok, tt.key, tt.wantOK)
		}
	}
}
