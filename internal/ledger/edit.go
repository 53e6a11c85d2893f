package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// EditRequest 描述对一条已有流水的修改：按桶 id + 流水 uid 定位，
// 携带新的字段值（Day 可能与原桶不同，表示改了日期）。
type EditRequest struct {
	BucketID string
	LineUID  string
	Asset    string
	Category string
	Item     string
	Price    decimal.Decimal
	Day      Day
}

// Edit 修改一条流水。日期没变就原地改字段；日期变了就把这条流水
// 挪到新日期的桶里（已有桶则追加，没有则新建），然后把被清空的桶删掉。
// 桶或流水不存在时返回 not-found 错误，账本保持不变。
func Edit(l Ledger, req EditRequest) (Ledger, error) {
	bucket := l.FindBucketByID(req.BucketID)
	if bucket == nil {
		return l, fmt.Errorf("edit: bucket %q: %w", req.BucketID, ErrBucketNotFound)
	}

	itemIdx := -1
	for i := range bucket.Body {
		if bucket.Body[i].UID == req.LineUID {
			itemIdx = i
			break
		}
	}
	if itemIdx == -1 {
		return l, fmt.Errorf("edit: line %q: %w", req.LineUID, ErrLineItemNotFound)
	}

	// 日期没变：原地更新字段
	if bucket.Header == req.Day {
		item := &bucket.Body[itemIdx]
		item.Asset = req.Asset
		item.Category = req.Category
		item.Item = req.Item
		item.Price = req.Price
		return l, nil
	}

	// 日期变了：带着新字段值挪桶，uid 保持不变
	moved := LineItem{
		UID:      req.LineUID,
		Asset:    req.Asset,
		Category: req.Category,
		Item:     req.Item,
		Price:    req.Price,
	}
	bucket.Body = append(bucket.Body[:itemIdx], bucket.Body[itemIdx+1:]...)

	if target := l.FindBucket(req.Day); target != nil {
		target.Body = append(target.Body, moved)
	} else {
		l = append(l, DayBucket{
			ID:     newID(),
			Header: req.Day,
			Body:   []LineItem{moved},
		})
	}

	return l.dropEmptyBuckets(), nil
}

// DeleteLineItem 删除一条流水，桶被清空就连桶一起删。
// 返回被删掉的流水，调用方必须自己去反转它对钱包余额的影响——
// 删账和删账的经济影响是两个显式步骤，不做隐式联动。
func DeleteLineItem(l Ledger, bucketID, lineUID string) (Ledger, LineItem, error) {
	bucket := l.FindBucketByID(bucketID)
	if bucket == nil {
		return l, LineItem{}, fmt.Errorf("delete: bucket %q: %w", bucketID, ErrBucketNotFound)
	}

	for i := range bucket.Body {
		if bucket.Body[i].UID == lineUID {
			removed := bucket.Body[i]
			bucket.Body = append(bucket.Body[:i], bucket.Body[i+1:]...)
			return l.dropEmptyBuckets(), removed, nil
		}
	}
	return l, LineItem{}, fmt.Errorf("delete: line %q: %w", lineUID, ErrLineItemNotFound)
}
