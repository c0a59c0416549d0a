package conf

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var (
	db      *mongo.Database
	gormDB  *gorm.DB
	rdb     *redis.Client
	onceDB  sync.Once
	onceGDB sync.Once
	onceRDB sync.Once
)

func MustMongoDB() *mongo.Database {
	onceDB.Do(func() {
		var err error
		if db, err = newDBEngine(); err != nil {
			logrus.Fatalf("new mongo db failed: %s", err)
		}
		// init index
		if err = CreateTableIndex(); err != nil {
			logrus.Fatalf("mongo db create index failed: %s", err)
		}
	})
	return db
}

func newDBEngine() (*mongo.Database, error) {
	logrus.Debugln("use Mongo as db")
	option := options.Client().
		ApplyURI(MongoDBSetting.Dsn()).
		SetRetryWrites(true).
		SetRetryReads(true).
		SetReadConcern(readconcern.Majority()).
		SetWriteConcern(writeconcern.New(writeconcern.WMajority()))

	client, err := mongo.NewClient(option)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = client.Connect(ctx); err != nil {
		return nil, err
	}
	return client.Database(MongoDBSetting.DBName), nil
}

func MustGormDB() *gorm.DB {
	onceGDB.Do(func() {
		var err error
		if gormDB, err = newGormDB(); err != nil {
			logrus.Fatalf("new gorm db failed: %s", err)
		}
	})
	return gormDB
}

func newGormDB() (*gorm.DB, error) {
	logrus.Debugln("use MySQL as db")
	level := logger.Silent
	if loggerSetting != nil && loggerSetting.logLevel() >= logrus.DebugLevel {
		level = logger.Info
	}
	gdb, err := gorm.Open(mysql.Open(MySQLSetting.Dsn()), &gorm.Config{
		Logger: logger.Default.LogMode(level),
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   MySQLSetting.TablePrefix,
			SingularTable: true,
		},
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(MySQLSetting.MaxIdleConns)
	sqlDB.SetMaxOpenConns(MySQLSetting.MaxOpenConns)
	return gdb, nil
}

func MustRedis() *redis.Client {
	onceRDB.Do(func() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     RedisSetting.Host,
			Password: RedisSetting.Password,
			DB:       RedisSetting.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logrus.Fatalf("new redis failed: %s", err)
		}
	})
	return rdb
}
