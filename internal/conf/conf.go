package conf

import (
	"log"
	"os"
	"reflect"
	"strings"
	"time"
)

var (
	loggerSetting     *LoggerSettingS
	loggerFileSetting *LoggerFileSettingS
	features          *featuresSettingS

	AppSetting           *AppSettingS
	ServerSetting        *ServerSettingS
	StorageSetting       *StorageSettingS
	UploadSetting        *UploadSettingS
	BigCacheIndexSetting *BigCacheIndexSettingS
	TweetSearchSetting   *TweetSearchS
	RedisSetting         *RedisSettingS
	MongoDBSetting       *MongoDBSettingS
	MySQLSetting         *MySQLSettingS
	MeiliSetting         *MeiliSettingS
)

func setupSetting(suite []string, noDefault bool, configPath ...string) error {
	setting, err := NewSetting(configPath...)
	if err != nil {
		return err
	}

	features = setting.FeaturesFrom("Features")
	if len(suite) > 0 {
		if err = features.Use(suite, noDefault); err != nil {
			return err
		}
	}

	objects := map[string]any{
		"App":           &AppSetting,
		"Server":        &ServerSetting,
		"Storage":       &StorageSetting,
		"Upload":        &UploadSetting,
		"BigCacheIndex": &BigCacheIndexSetting,
		"TweetSearch":   &TweetSearchSetting,
		"Logger":        &loggerSetting,
		"LoggerFile":    &loggerFileSetting,
		"Redis":         &RedisSetting,
		"MongoDB":       &MongoDBSetting,
		"MySQL":         &MySQLSetting,
		"Meili":         &MeiliSetting,
	}
	if err = setting.Unmarshal(objects); err != nil {
		return err
	}

	ServerSetting.ReadTimeout *= time.Second
	ServerSetting.WriteTimeout *= time.Second
	UploadSetting.ImageDelay *= time.Millisecond
	UploadSetting.VideoDelay *= time.Millisecond
	BigCacheIndexSetting.ExpireInSecond *= time.Second

	return nil
}

func Initialize(suite []string, noDefault bool, configPath ...string) {
	err := setupSetting(suite, noDefault, configPath...)
	if err != nil {
		log.Fatalf("init.setupSetting err: %v", err)
	}

	CheckSetting(AppSetting, "host", "currentuserid")
	CheckSetting(StorageSetting, "postskey", "likeskey", "verifiedkey", "badgekey")
	if CfgIf("Redis") {
		CheckSetting(RedisSetting, "host")
	}
	if CfgIf("Meili") {
		CheckSetting(MeiliSetting, "host", "index")
	}

	// set default timezone
	_ = os.Setenv("TZ", "UTC")

	setupLogger()
}

func CheckSetting(i any, keys ...string) {
	rv := reflect.ValueOf(i)

	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}

	for _, key := range keys {
		f := rv.FieldByNameFunc(func(s string) bool {
			return strings.ToLower(s) == key
		})
		if !f.IsValid() || f.IsZero() {
			log.Fatalf("%s.%s must be filled", rv.Type().Name(), key)
		}
	}
}

// Cfg get value by key if exist
func Cfg(key string) (string, bool) {
	return features.Cfg(key)
}

// CfgIf check expression is true. if expression just have a string like
func CfgIf(expression string) bool {
	return features.CfgIf(expression)
}
