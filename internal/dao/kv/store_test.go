package kv

import (
	"context"
	"os"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"pujo-gallery/internal/conf"
)

func TestMongoKeyValue(t *testing.T) {
	uri := os.Getenv("PUJO_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("PUJO_TEST_MONGO_URI not set")
	}
	ctx := context.Background()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatal(err)
	}
	defer client.Disconnect(ctx)

	db := client.Database("pujo_gallery_test")
	defer db.Drop(ctx)
	exerciseKeyValue(t, &mongoKeyValueServant{coll: db.Collection(TableKV)})
}

func TestMySQLKeyValue(t *testing.T) {
	dsn := os.Getenv("PUJO_TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("PUJO_TEST_MYSQL_DSN not set")
	}
	conf.MySQLSetting = &conf.MySQLSettingS{TablePrefix: "test_"}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err = db.AutoMigrate(&Entry{}); err != nil {
		t.Fatal(err)
	}
	defer db.Migrator().DropTable(&Entry{})
	exerciseKeyValue(t, &jinzhuKeyValueServant{db: db})
}
