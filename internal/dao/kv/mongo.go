package kv

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/semver/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"pujo-gallery/internal/core"
)

const TableKV = "kv"

var (
	_ core.KeyValueService = (*mongoKeyValueServant)(nil)
	_ core.VersionInfo     = (*mongoKeyValueServant)(nil)
)

type document struct {
	Key        string `bson:"_id"`
	Value      []byte `bson:"value"`
	ModifiedOn int64  `bson:"modified_on"`
}

type mongoKeyValueServant struct {
	coll *mongo.Collection
}

func (s *mongoKeyValueServant) Get(ctx context.Context, key string) ([]byte, error) {
	var doc document
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, core.ErrKeyNotFound
	} else if err != nil {
		return nil, err
	}
	return doc.Value, nil
}

func (s *mongoKeyValueServant) Set(ctx context.Context, key string, value []byte) error {
	update := bson.M{"$set": bson.M{
		"value":       value,
		"modified_on": time.Now().Unix(),
	}}
	_, err := s.coll.UpdateOne(ctx, bson.M{"_id": key}, update, options.Update().SetUpsert(true))
	return err
}

func (s *mongoKeyValueServant) Delete(ctx context.Context, key string) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

func (s *mongoKeyValueServant) Name() string {
	return "Mongo"
}

func (s *mongoKeyValueServant) Version() *semver.Version {
	return semver.MustParse("v0.1.0")
}
