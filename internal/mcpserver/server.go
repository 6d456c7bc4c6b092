// Package mcpserver exposes the SQL facade as MCP tools over SSE.
package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/quantfish/funddb/internal/facade"
)

// ServerName identifies the MCP server to clients.
const ServerName = "operateSQLite"

// New builds the MCP server with the four facade tools registered. SQL
// failures ride inside the result text; the tool call itself always
// succeeds at the protocol level.
func New(f *facade.Facade, version string) *server.MCPServer {
	srv := server.NewMCPServer(ServerName, version,
		server.WithToolCapabilities(false),
	)

	executeSQL := mcp.NewTool("execute_sql",
		mcp.WithDescription("执行SQL查询语句，支持多条语句以分号分隔。SELECT等查询返回CSV格式结果，其他语句返回影响行数，多条语句的结果以---分隔"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("要执行的SQL语句"),
		),
	)
	srv.AddTool(executeSQL, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := req.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(f.ExecuteSQL(ctx, query)), nil
	})

	getTableName := mcp.NewTool("get_table_name",
		mcp.WithDescription("搜索数据库中的表名，关键词为空时返回所有表"),
		mcp.WithString("text",
			mcp.Description("要搜索的表名关键词"),
		),
	)
	srv.AddTool(getTableName, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(f.TableNames(ctx, req.GetString("text", ""))), nil
	})

	getTableDesc := mcp.NewTool("get_table_desc",
		mcp.WithDescription("获取指定表的字段结构信息"),
		mcp.WithString("table_name",
			mcp.Required(),
			mcp.Description("要查询的表名"),
		),
	)
	srv.AddTool(getTableDesc, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := req.RequireString("table_name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(f.TableDesc(ctx, name)), nil
	})

	backupDatabase := mcp.NewTool("backup_database",
		mcp.WithDescription("备份SQLite数据库，默认为原数据库文件名加上时间戳"),
		mcp.WithString("backup_path",
			mcp.Description("备份文件路径"),
		),
	)
	srv.AddTool(backupDatabase, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(f.Backup(req.GetString("backup_path", ""))), nil
	})

	return srv
}

// ServeSSE serves the MCP server over SSE on addr, blocking until the
// listener fails.
func ServeSSE(srv *server.MCPServer, addr string) error {
	sse := server.NewSSEServer(srv)
	return sse.Start(addr)
}
