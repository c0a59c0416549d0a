package conf

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/gogf/gf/util/gconv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"pujo-gallery/pkg/json"
)

//go:embed table.json
var tableCfg []byte

type tableInfo struct {
	TableName     string
	Indexes       []param
	UniqueIndexes []param
}

type param []bson.M

// CreateTableIndex makes sure every collection listed in table.json exists
// together with its indexes.
func CreateTableIndex() error {
	var tables []*tableInfo
	if err := json.Unmarshal(tableCfg, &tables); err != nil {
		return fmt.Errorf("database table info error: %w", err)
	}
	ctx := context.Background()
	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("get all collection error: %w", err)
	}
	exists := make(map[string]struct{}, len(names))
	for _, name := range names {
		exists[name] = struct{}{}
	}
	for _, table := range tables {
		if _, ok := exists[table.TableName]; !ok {
			if err = db.CreateCollection(ctx, table.TableName); err != nil {
				return err
			}
		}
		if err = createIndex(ctx, table); err != nil {
			return err
		}
	}
	return nil
}

func createIndex(ctx context.Context, table *tableInfo) error {
	models := make([]mongo.IndexModel, 0, len(table.Indexes)+len(table.UniqueIndexes))
	for _, params := range table.Indexes {
		models = append(models, mongo.IndexModel{Keys: indexKeys(params)})
	}
	for _, params := range table.UniqueIndexes {
		models = append(models, mongo.IndexModel{
			Keys:    indexKeys(params),
			Options: options.Index().SetUnique(true),
		})
	}
	if len(models) == 0 {
		return nil
	}
	if _, err := db.Collection(table.TableName).Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("table: %s, create index: %w", table.TableName, err)
	}
	return nil
}

func indexKeys(params param) bson.D {
	keys := bson.D{}
	for _, p := range params {
		for key, value := range p {
			if s, ok := value.(string); ok {
				keys = append(keys, bson.E{Key: key, Value: s})
			} else {
				keys = append(keys, bson.E{Key: key, Value: gconv.Int(value)})
			}
		}
	}
	return keys
}
