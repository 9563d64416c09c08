package util

import snowflake "github.com/yockii/snowflake_ext"

var idWorker *snowflake.Worker

// InitNode 按节点编号初始化雪花ID生成器，须在建库前调用
func InitNode(nodeID uint64) error {
	w, err := snowflake.NewSnowflake(nodeID)
	if err != nil {
		return err
	}
	idWorker = w
	return nil
}

// NewID 生成全局唯一ID，供各模型的BeforeCreate钩子使用
func NewID() uint64 {
	return idWorker.NextId()
}
