package internal

const (
	// 哈希时每次读取的块大小
	ChunkSize = 8192

	// 配置文件目录
	DefaultConfigDir = "$HOME/.dupe-hunter"

	SystemConfigDir = "/etc/dupe-hunter"

	// 报告中摘要截断长度
	DigestPrefixLen = 8
)
