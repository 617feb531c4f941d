package repository

import (
	"context"
	"encoding/json"
)

// rawデータレイヤー。生成ジョブの出力と、クリーニング後の出力を分ける。
const (
	LayerRaw     = "raw"
	LayerCleaned = "cleaned"
)

// ジョブ単位（フォルダ）で生成行を貯める組み込みストア。
// 行は {userID}/{parentJobID}/{jobID} 配下にテーブル名付きで置かれる。
type RawStore interface {
	SaveRows(ctx context.Context, layer, userID, parentJobID, jobID, table string, rows []json.RawMessage) error
	// フォルダ内の1テーブル分をlimit件まで
	ListRows(ctx context.Context, layer, userID, parentJobID, table string, limit int) ([]json.RawMessage, error)
	// フォルダにrawデータが1行でもあるか（生成完了前の404判定）
	HasFolder(ctx context.Context, userID, parentJobID string) (bool, error)
	// ユーザーのフォルダ一覧（昇順）
	ListParentJobs(ctx context.Context, userID string) ([]string, error)
	// フォルダを全レイヤーから削除
	DeleteFolder(ctx context.Context, userID, parentJobID string) error
}

// チャンク完了の記録（全チャンク完了＝ジョブ完了の判定に使う）。
type JobTracker interface {
	MarkCompleted(ctx context.Context, parentJobID, jobID string) error
	CompletedCount(ctx context.Context, parentJobID string) (int, error)
}
