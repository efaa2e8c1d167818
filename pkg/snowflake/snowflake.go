package snowflake

import (
	"os"
	"strconv"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

func init() {
	// 纪元取项目上线年份，多实例部署时用 NODE_ID 区分节点
	snowflake.Epoch = 1704067200000 // 2024-01-01 00:00:00 UTC
	nodeID := int64(1)
	if v := os.Getenv("NODE_ID"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			nodeID = n
		}
	}
	node, _ = snowflake.NewNode(nodeID)
}

func GenUserID() int64 {
	return node.Generate().Int64()
}
func GenID() int64 {
	return node.Generate().Int64()
}
