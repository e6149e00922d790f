package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Branch struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	BranchName string             `json:"branchName" bson:"branchName"`
	HospitalId string             `json:"hospitalId" bson:"hospitalId"`
	TenantId   string             `json:"tenantId" bson:"tenantId"`
	Address    string             `json:"address" bson:"address"`
	IsActive   bool               `json:"isActive" bson:"isActive"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// BranchRef is the branch a doctor belongs to. Upstream documents carry it
// either as a bare id or as a populated {_id, branchName} object.
type BranchRef struct {
	id        string
	name      string
	populated bool
}

func UnpopulatedBranch(id string) BranchRef {
	return BranchRef{id: id}
}

func PopulatedBranch(id, name string) BranchRef {
	return BranchRef{id: id, name: name, populated: true}
}

func (b BranchRef) ID() string        { return b.id }
func (b BranchRef) IsPopulated() bool { return b.populated }
func (b BranchRef) IsZero() bool      { return b.id == "" && !b.populated }

// Name returns the embedded branch name, or "" for an unpopulated reference.
func (b BranchRef) Name() string {
	if b.populated {
		return b.name
	}
	return ""
}

// DisplayName resolves the branch name, looking unpopulated references up
// in names (keyed by branch id).
func (b BranchRef) DisplayName(names map[string]string) string {
	if b.populated && b.name != "" {
		return b.name
	}
	if n, ok := names[b.id]; ok {
		return n
	}
	return b.id
}

func (b BranchRef) Matches(branchId string) bool {
	return branchId != "" && b.id == branchId
}

type branchDoc struct {
	ID         string `json:"_id" bson:"_id"`
	BranchName string `json:"branchName" bson:"branchName"`
}

func (b BranchRef) MarshalJSON() ([]byte, error) {
	if b.IsZero() {
		return []byte("null"), nil
	}
	if b.populated {
		return json.Marshal(branchDoc{ID: b.id, BranchName: b.name})
	}
	return json.Marshal(b.id)
}

func (b *BranchRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*b = BranchRef{}
		return nil
	case data[0] == '"':
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*b = UnpopulatedBranch(id)
		return nil
	case data[0] == '{':
		var doc struct {
			ID         string `json:"_id"`
			AltID      string `json:"id"`
			BranchName string `json:"branchName"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		if doc.ID == "" {
			doc.ID = doc.AltID
		}
		*b = PopulatedBranch(doc.ID, doc.BranchName)
		return nil
	}
	return fmt.Errorf("branch reference: unsupported JSON value %s", string(data))
}

func (b BranchRef) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if b.IsZero() {
		return bson.MarshalValue(nil)
	}
	if b.populated {
		return bson.MarshalValue(bson.D{{Key: "_id", Value: b.id}, {Key: "branchName", Value: b.name}})
	}
	return bson.MarshalValue(b.id)
}

func (b *BranchRef) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeNull, bson.TypeUndefined:
		*b = BranchRef{}
	case bson.TypeString:
		*b = UnpopulatedBranch(raw.StringValue())
	case bson.TypeObjectID:
		*b = UnpopulatedBranch(raw.ObjectID().Hex())
	case bson.TypeEmbeddedDocument:
		var doc struct {
			ID         bson.RawValue `bson:"_id"`
			BranchName string        `bson:"branchName"`
		}
		if err := raw.Unmarshal(&doc); err != nil {
			return err
		}
		*b = PopulatedBranch(rawID(doc.ID), doc.BranchName)
	default:
		return errors.New("branch reference: unsupported BSON type " + t.String())
	}
	return nil
}

func rawID(v bson.RawValue) string {
	switch v.Type {
	case bson.TypeObjectID:
		return v.ObjectID().Hex()
	case bson.TypeString:
		return v.StringValue()
	}
	return ""
}
