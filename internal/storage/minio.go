package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client encapsule le bucket d'images produits sur MinIO. Le bucket est
// public en lecture : l'URL retournée par PublicURL est résolvable telle
// quelle par le front.
type Client struct {
	minio    *minio.Client
	endpoint string
	bucket   string
	useSSL   bool
}

// Connect ouvre la connexion MinIO depuis l'environnement et s'assure que
// le bucket existe.
func Connect(ctx context.Context) (*Client, error) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	secretKey := os.Getenv("MINIO_SECRET_KEY")
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"
	bucket := os.Getenv("MINIO_BUCKET")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, &StorageError{Op: "connect", Message: err.Error()}
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, &StorageError{Op: "connect", Message: err.Error()}
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, &StorageError{Op: "connect", Message: err.Error()}
		}
		log.Println("🪣 Bucket créé :", bucket)
	}

	log.Println("✅ Connecté à MinIO :", endpoint)
	return &Client{minio: client, endpoint: endpoint, bucket: bucket, useSSL: useSSL}, nil
}

// Upload envoie un objet dans le bucket. Une collision de nom écrase
// l'objet existant.
func (c *Client) Upload(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) error {
	_, err := c.minio.PutObject(ctx, c.bucket, objectName, r, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return &StorageError{Op: "upload", Message: err.Error()}
	}
	return nil
}

// PublicURL construit l'URL publique d'un objet du bucket
func (c *Client) PublicURL(objectName string) string {
	scheme := "http"
	if c.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, c.endpoint, c.bucket, objectName)
}

// Bucket retourne le nom du bucket d'images
func (c *Client) Bucket() string {
	return c.bucket
}

// Remove supprime un objet du bucket
func (c *Client) Remove(ctx context.Context, objectName string) error {
	if err := c.minio.RemoveObject(ctx, c.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return &StorageError{Op: "remove", Message: err.Error()}
	}
	return nil
}
