package ledger

// Allocate 把若干条流水放进 day 对应的日桶：已有该日的桶就按顺序追加，
// 没有就新建一个桶（新 id）再追加。统一收一个切片，单条就传长度 1 的切片
// （转账会一次提交出账+入账两条）。
// 本操作永远不会删桶，也永远不会造出空桶。
func Allocate(l Ledger, items []LineItem, day Day) Ledger {
	if len(items) == 0 {
		return l
	}

	if b := l.FindBucket(day); b != nil {
		b.Body = append(b.Body, items...)
		return l
	}

	bucket := DayBucket{
		ID:     newID(),
		Header: day,
		Body:   append([]LineItem(nil), items...),
	}
	return append(l, bucket)
}
