package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"

	"brandhub/internal/models"
)

// Indexer mirrors product mutations into elasticsearch. A nil Indexer is
// valid and does nothing.
type Indexer struct {
	ES    *elasticsearch.Client
	Index string
}

func NewIndexer(es *elasticsearch.Client, index string) *Indexer {
	if es == nil {
		return nil
	}
	return &Indexer{ES: es, Index: index}
}

type productDoc struct {
	ID          string  `json:"id"`
	BrandID     string  `json:"brand_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Discount    float64 `json:"discount_rate"`
}

func (ix *Indexer) IndexProduct(ctx context.Context, p *models.Product) error {
	if ix == nil {
		return nil
	}

	doc := productDoc{
		ID:          p.ID.String(),
		BrandID:     p.BrandID.String(),
		Title:       p.Title,
		Description: p.Description,
		Discount:    p.DiscountRate,
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(doc); err != nil {
		return err
	}

	res, err := ix.ES.Index(
		ix.Index,
		&buf,
		ix.ES.Index.WithContext(ctx),
		ix.ES.Index.WithDocumentID(doc.ID),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index product: %s", res.Status())
	}
	return nil
}

func (ix *Indexer) RemoveProduct(ctx context.Context, id string) error {
	if ix == nil {
		return nil
	}

	res, err := ix.ES.Delete(ix.Index, id, ix.ES.Delete.WithContext(ctx))
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("remove product: %s", res.Status())
	}
	return nil
}
