package storage

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path"
	"time"

	"github.com/google/uuid"
)

type StorageConfig struct {
	StorageBaseUrl    string
	StorageBucket     string
	StorageServiceKey string
}

type StorageRepository struct {
	storageConfig StorageConfig
}

func NewStorageRepository(cfg StorageConfig) *StorageRepository {
	return &StorageRepository{
		cfg,
	}
}

// Upload stores the file under a random object name, keeping the original
// extension, and returns the public URL to embed in product rows.
func (r StorageRepository) Upload(filename, contentType string, content []byte) (string, error) {
	objectName := uuid.NewString() + path.Ext(filename)
	url := fmt.Sprintf("%s/object/%s/%s", r.storageConfig.StorageBaseUrl, r.storageConfig.StorageBucket, objectName)

	client := &http.Client{Timeout: 15 * time.Second}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(content))
	if err != nil {
		return "", err
	}

	req.Header.Add("Content-Type", contentType)
	req.Header.Add("Authorization", "Bearer "+r.storageConfig.StorageServiceKey)

	res, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(res.Body)
		fmt.Println("Storage Response:", string(bodyBytes))
		return "", fmt.Errorf("storage service return negative response %v", res.StatusCode)
	}

	return r.PublicURL(objectName), nil
}

func (r StorageRepository) PublicURL(objectName string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", r.storageConfig.StorageBaseUrl, r.storageConfig.StorageBucket, objectName)
}

func (r StorageRepository) Remove(objectName string) error {
	url := fmt.Sprintf("%s/object/%s/%s", r.storageConfig.StorageBaseUrl, r.storageConfig.StorageBucket, objectName)

	client := &http.Client{Timeout: 15 * time.Second}
	req, err := http.NewRequest(http.MethodDelete, url, nil)
	if err != nil {
		return err
	}

	req.Header.Add("Authorization", "Bearer "+r.storageConfig.StorageServiceKey)

	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("storage service return negative response %v", res.StatusCode)
	}

	return nil
}
