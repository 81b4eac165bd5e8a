package models

import "math"

// MaxLimit caps the page size a client can ask for.
const MaxLimit = 100

// PaginationParams ใช้เก็บค่าการแบ่งหน้าและค้นหา template
// Limit 0 means no limit.
type PaginationParams struct {
	Page   int    `json:"page" query:"page" example:"1"`     // หมายเลขหน้าที่ต้องการ
	Limit  int    `json:"limit" query:"limit" example:"10"`  // จำนวนรายการต่อหน้า
	Search string `json:"search" query:"search" example:""` // ค้นหาจาก title (Optional)
}

// DefaultPagination returns every template on a single page.
func DefaultPagination() PaginationParams {
	return PaginationParams{
		Page:  1,
		Limit: 0,
	}
}

// Normalize clamps negative or zero values to the defaults and caps Limit at MaxLimit.
func (p *PaginationParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 0 {
		p.Limit = 0
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// GetSkip คำนวณจำนวนรายการที่ต้องข้าม
// Saturates at math.MaxInt64 instead of overflowing.
func (p *PaginationParams) GetSkip() int64 {
	if p.Limit <= 0 || p.Page <= 1 {
		return 0
	}
	pages, limit := int64(p.Page-1), int64(p.Limit)
	if pages > math.MaxInt64/limit {
		return math.MaxInt64
	}
	return pages * limit
}
