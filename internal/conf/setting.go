package conf

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

//go:embed config.yaml
var defaultConfig []byte

type Setting struct {
	vp *viper.Viper
}

type AppSettingS struct {
	Name              string
	Host              string
	DefaultPageSize   int
	MaxPageSize       int
	TrendingLimit     int
	FallbackHashtags  []string
	CurrentUserId     string
	CurrentUserName   string
	CurrentUserAvatar string
}

type ServerSettingS struct {
	RunMode        string
	HttpIp         string
	HttpPort       string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	DebugWhiteList []string
}

type StorageSettingS struct {
	PostsKey    string
	LikesKey    string
	VerifiedKey string
	BadgeKey    string
}

type UploadSettingS struct {
	ImageDelay   time.Duration
	VideoDelay   time.Duration
	MaxImageSize int64
	MaxVideoSize int64
}

type BigCacheIndexSettingS struct {
	MaxIndexPage   int
	ExpireInSecond time.Duration
	Verbose        bool
}

type TweetSearchS struct {
	MaxUpdateQPS int
	MinWorker    int
}

type LoggerSettingS struct {
	Level  string
	Format string
}

type LoggerFileSettingS struct {
	SavePath string
	FileName string
	FileExt  string
}

type RedisSettingS struct {
	Host     string
	Password string
	DB       int
}

type MongoDBSettingS struct {
	Host     string
	DBName   string
	Username string
	Password string
}

type MySQLSettingS struct {
	Username     string
	Password     string
	Host         string
	DBName       string
	TablePrefix  string
	Charset      string
	ParseTime    bool
	MaxIdleConns int
	MaxOpenConns int
}

type MeiliSettingS struct {
	Host   string
	Index  string
	ApiKey string
	Secure bool
}

// NewSetting loads the embedded defaults first, then merges config.yaml from
// the given paths (or . and custom/) when one exists.
func NewSetting(configPath ...string) (*Setting, error) {
	vp := viper.New()
	vp.SetConfigType("yaml")
	if err := vp.ReadConfig(bytes.NewReader(defaultConfig)); err != nil {
		return nil, err
	}

	vp.SetConfigName("config")
	if len(configPath) > 0 {
		for _, p := range configPath {
			vp.AddConfigPath(p)
		}
	} else {
		vp.AddConfigPath(".")
		vp.AddConfigPath("custom/")
	}
	if err := vp.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		logrus.Debugln("no custom config.yaml found, use embedded default config")
	}

	return &Setting{vp: vp}, nil
}

func (s *Setting) ReadSection(k string, v any) error {
	return s.vp.UnmarshalKey(k, v)
}

func (s *Setting) Unmarshal(objects map[string]any) error {
	for k, v := range objects {
		if err := s.vp.UnmarshalKey(k, v); err != nil {
			return fmt.Errorf("unmarshal section %s: %w", k, err)
		}
	}
	return nil
}

func (s *Setting) FeaturesFrom(k string) *featuresSettingS {
	sub := s.vp.Sub(k)
	if sub == nil {
		return newFeatures(nil, nil)
	}
	suites := make(map[string][]string)
	kv := make(map[string]string)
	for key, value := range sub.AllSettings() {
		switch v := value.(type) {
		case []any:
			items := make([]string, 0, len(v))
			for _, item := range v {
				items = append(items, fmt.Sprint(item))
			}
			suites[strings.ToLower(key)] = items
		case string:
			kv[strings.ToLower(key)] = v
		}
	}
	return newFeatures(suites, kv)
}

func (s *MySQLSettingS) Dsn() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=%s&parseTime=%t&loc=Local",
		s.Username,
		s.Password,
		s.Host,
		s.DBName,
		s.Charset,
		s.ParseTime,
	)
}

func (s *MongoDBSettingS) Dsn() string {
	if s.Username == "" {
		return fmt.Sprintf("mongodb://%s", s.Host)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s", s.Username, s.Password, s.Host)
}

func (s *MeiliSettingS) Endpoint() string {
	if s.Secure {
		return "https://" + s.Host
	}
	return "http://" + s.Host
}

func (s *LoggerSettingS) logLevel() logrus.Level {
	level, err := logrus.ParseLevel(s.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
