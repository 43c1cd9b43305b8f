// Package local_fs 提供本地文件系统附件存储
package local_fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/evanhugh/assistant-hub-service/pkg/fileurl"
)

type Config struct {
	SavePath string `yaml:"save-path" default:"storage/uploads"`
}

type LocalFS struct {
	Config *Config
}

func NewClient(conf *Config) (*LocalFS, error) {
	if conf.SavePath == "" {
		conf.SavePath = "storage/uploads"
	}
	if err := os.MkdirAll(conf.SavePath, 0754); err != nil {
		return nil, err
	}
	return &LocalFS{Config: conf}, nil
}

func (p *LocalFS) getSavePath() string {
	return p.Config.SavePath + string(os.PathSeparator)
}

// Save writes content under fileKey, creating intermediate directories.
// Save 将内容写入 fileKey 对应的文件，自动创建中间目录。
func (p *LocalFS) Save(fileKey string, r io.Reader) (int64, error) {
	dst := p.getSavePath() + fileKey
	if err := fileurl.CreatePath(dst, os.ModePerm); err != nil {
		return 0, err
	}
	f, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return io.Copy(f, r)
}

// Open 打开 fileKey 对应的文件用于读取
func (p *LocalFS) Open(fileKey string) (io.ReadCloser, error) {
	return os.Open(p.getSavePath() + fileKey)
}

// ReadAll 读取 fileKey 对应文件的全部内容
func (p *LocalFS) ReadAll(fileKey string) ([]byte, error) {
	return os.ReadFile(p.getSavePath() + fileKey)
}

// Exist 检查文件是否存在
func (p *LocalFS) Exist(fileKey string) bool {
	return fileurl.IsExist(p.getSavePath() + fileKey)
}

// SavePathAbs 返回存储根目录的绝对路径
func (p *LocalFS) SavePathAbs() string {
	abs, err := filepath.Abs(p.Config.SavePath)
	if err != nil {
		return p.Config.SavePath
	}
	return abs
}
