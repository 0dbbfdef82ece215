package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for the persisted domain types. Field order
// is part of the storage format; append new fields at the end only.

// IDMUS serializes ID values.
var IDMUS = idMUS{}

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

// ProductMUS serializes Product values.
var ProductMUS = productMUS{}

type productMUS struct{}

func (productMUS) Marshal(p Product, bs []byte) (n int) {
	n = IDMUS.Marshal(p.Id, bs)
	n += ord.String.Marshal(p.Name, bs[n:])
	n += ord.String.Marshal(p.Description, bs[n:])
	n += ord.String.Marshal(p.Category, bs[n:])
	n += ord.String.Marshal(p.Subcategory, bs[n:])
	n += marshalStringSlice(p.Tags, bs[n:])
	n += marshalStringSlice(p.Colors, bs[n:])
	n += marshalStringSlice(p.Materials, bs[n:])
	n += marshalStringSlice(p.Sizes, bs[n:])
	n += ord.String.Marshal(p.ImageURL, bs[n:])
	n += raw.Float64.Marshal(p.Price, bs[n:])
	n += varint.Int64.Marshal(p.Stock, bs[n:])
	n += raw.Float64.Marshal(p.Rating, bs[n:])
	n += varint.Int64.Marshal(p.ReviewCount, bs[n:])
	n += varint.Int64.Marshal(p.SalesCount, bs[n:])
	n += marshalTime(p.CreatedAt, bs[n:])
	n += marshalTime(p.InsertedAt, bs[n:])
	n += marshalTime(p.UpdatedAt, bs[n:])
	return n
}

func (productMUS) Unmarshal(bs []byte) (p Product, n int, err error) {
	var m int
	if p.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	if p.Name, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += m
	if p.Description, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += m
	if p.Category, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += m
	if p.Subcategory, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += m
	if p.Tags, m, err = unmarshalStringSlice(bs[n:]); err != nil {
		return
	}
	n += m
	if p.Colors, m, err = unmarshalStringSlice(bs[n:]); err != nil {
		return
	}
	n += m
	if p.Materials, m, err = unmarshalStringSlice(bs[n:]); err != nil {
		return
	}
	n += m
	if p.Sizes, m, err = unmarshalStringSlice(bs[n:]); err != nil {
		return
	}
	n += m
	if p.ImageURL, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += m
	if p.Price, m, err = raw.Float64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += m
	if p.Stock, m, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += m
	if p.Rating, m, err = raw.Float64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += m
	if p.ReviewCount, m, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += m
	if p.SalesCount, m, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += m
	if p.CreatedAt, m, err = unmarshalTime(bs[n:]); err != nil {
		return
	}
	n += m
	if p.InsertedAt, m, err = unmarshalTime(bs[n:]); err != nil {
		return
	}
	n += m
	if p.UpdatedAt, m, err = unmarshalTime(bs[n:]); err != nil {
		return
	}
	n += m
	return
}

func (productMUS) Size(p Product) (size int) {
	size = IDMUS.Size(p.Id)
	size += ord.String.Size(p.Name)
	size += ord.String.Size(p.Description)
	size += ord.String.Size(p.Category)
	size += ord.String.Size(p.Subcategory)
	size += sizeStringSlice(p.Tags)
	size += sizeStringSlice(p.Colors)
	size += sizeStringSlice(p.Materials)
	size += sizeStringSlice(p.Sizes)
	size += ord.String.Size(p.ImageURL)
	size += raw.Float64.Size(p.Price)
	size += varint.Int64.Size(p.Stock)
	size += raw.Float64.Size(p.Rating)
	size += varint.Int64.Size(p.ReviewCount)
	size += varint.Int64.Size(p.SalesCount)
	size += sizeTime(p.CreatedAt)
	size += sizeTime(p.InsertedAt)
	size += sizeTime(p.UpdatedAt)
	return size
}

// IndexStateMUS serializes IndexState values.
var IndexStateMUS = indexStateMUS{}

type indexStateMUS struct{}

func (indexStateMUS) Marshal(s IndexState, bs []byte) (n int) {
	n = IDMUS.Marshal(s.CatalogHash, bs)
	n += varint.PositiveInt.Marshal(s.ProductCount, bs[n:])
	n += varint.PositiveInt.Marshal(s.TermCount, bs[n:])
	n += marshalTime(s.BuiltAt, bs[n:])
	n += marshalTime(s.UpdatedAt, bs[n:])
	return n
}

func (indexStateMUS) Unmarshal(bs []byte) (s IndexState, n int, err error) {
	var m int
	if s.CatalogHash, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	if s.ProductCount, m, err = varint.PositiveInt.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += m
	if s.TermCount, m, err = varint.PositiveInt.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += m
	if s.BuiltAt, m, err = unmarshalTime(bs[n:]); err != nil {
		return
	}
	n += m
	if s.UpdatedAt, m, err = unmarshalTime(bs[n:]); err != nil {
		return
	}
	n += m
	return
}

func (indexStateMUS) Size(s IndexState) (size int) {
	size = IDMUS.Size(s.CatalogHash)
	size += varint.PositiveInt.Size(s.ProductCount)
	size += varint.PositiveInt.Size(s.TermCount)
	size += sizeTime(s.BuiltAt)
	size += sizeTime(s.UpdatedAt)
	return size
}

// String slices are encoded as a varint length prefix followed by the
// elements in order.

func marshalStringSlice(v []string, bs []byte) (n int) {
	n = varint.PositiveInt.Marshal(len(v), bs)
	for _, s := range v {
		n += ord.String.Marshal(s, bs[n:])
	}
	return n
}

func unmarshalStringSlice(bs []byte) (v []string, n int, err error) {
	length, n, err := varint.PositiveInt.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	if length == 0 {
		return nil, n, nil
	}
	v = make([]string, length)
	for i := 0; i < length; i++ {
		var m int
		if v[i], m, err = ord.String.Unmarshal(bs[n:]); err != nil {
			return nil, n, err
		}
		n += m
	}
	return v, n, nil
}

func sizeStringSlice(v []string) (size int) {
	size = varint.PositiveInt.Size(len(v))
	for _, s := range v {
		size += ord.String.Size(s)
	}
	return size
}

// Timestamps are stored as Unix microseconds in UTC.

func marshalTime(t time.Time, bs []byte) int {
	return varint.Int64.Marshal(t.UnixMicro(), bs)
}

func unmarshalTime(bs []byte) (time.Time, int, error) {
	micros, n, err := varint.Int64.Unmarshal(bs)
	if err != nil {
		return time.Time{}, n, err
	}
	return time.UnixMicro(micros).UTC(), n, nil
}

func sizeTime(t time.Time) int {
	return varint.Int64.Size(t.UnixMicro())
}
