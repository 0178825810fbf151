package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rezonia/invoice-generator/internal/model"
)

// File is a Store backed by a single JSON file holding the full invoice
// list. Writes go through a temp file and rename, so readers never observe
// a half-written file.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a file-backed store at path, creating the parent
// directory and an empty invoice list if needed.
func NewFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeFileAtomic(path, []*model.Invoice{}); err != nil {
			return nil, err
		}
	}
	return &File{path: path}, nil
}

func (f *File) Get(ctx context.Context, id string) (*model.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	invoices, err := f.read()
	if err != nil {
		return nil, err
	}
	for _, inv := range invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, ErrNotFound
}

func (f *File) List(ctx context.Context) ([]*model.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.read()
}

func (f *File) Save(ctx context.Context, inv *model.Invoice) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	invoices, err := f.read()
	if err != nil {
		return err
	}

	cp := *inv
	cp.UpdatedAt = time.Now().UTC()

	replaced := false
	for i := range invoices {
		if invoices[i].ID == cp.ID {
			invoices[i] = &cp
			replaced = true
			break
		}
	}
	if !replaced {
		invoices = append(invoices, &cp)
	}

	return writeFileAtomic(f.path, invoices)
}

func (f *File) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	invoices, err := f.read()
	if err != nil {
		return err
	}

	kept := invoices[:0]
	for _, inv := range invoices {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}
	if len(kept) == len(invoices) {
		return ErrNotFound
	}

	return writeFileAtomic(f.path, kept)
}

func (f *File) read() ([]*model.Invoice, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read invoice data: %w", err)
	}
	var invoices []*model.Invoice
	if err := json.Unmarshal(data, &invoices); err != nil {
		return nil, fmt.Errorf("failed to decode invoice data: %w", err)
	}
	return invoices, nil
}

func writeFileAtomic(path string, invoices []*model.Invoice) error {
	data, err := json.MarshalIndent(invoices, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode invoice data: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write invoice data: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace invoice data: %w", err)
	}
	return nil
}
