package services

import (
	"errors"
	"fmt"
)

// Error bisnis yang dipetakan controller ke status HTTP. Request lain tidak
// ikut gagal; tidak ada error yang fatal untuk proses.
var (
	ErrEmptyCart          = errors.New("keranjang belanja kosong")
	ErrInvalidQuantity    = errors.New("jumlah tidak valid")
	ErrIngredientNotFound = errors.New("bahan baku tidak ditemukan")
	ErrSupplierNotFound   = errors.New("supplier tidak ditemukan")
	ErrPONotFound         = errors.New("purchase order tidak ditemukan")
	ErrAlreadyReceived    = errors.New("purchase order sudah diterima")
	ErrIncompletePO       = errors.New("data purchase order tidak lengkap")
	ErrInvalidTransition  = errors.New("transisi status tidak diizinkan")
)

// ProductNotFoundError menandai item keranjang yang menunjuk produk
// yang tidak ada.
type ProductNotFoundError struct {
	ProductID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("produk %d tidak ditemukan", e.ProductID)
}

// InsufficientStockError membawa bahan yang memblokir reservasi supaya
// pesan ke kasir bisa menyebut bahannya, bukan sekadar "stok kurang".
type InsufficientStockError struct {
	IngredientID   uint
	IngredientName string
	Requested      float64
	Available      float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stok %s tidak mencukupi (butuh %.3f, tersedia %.3f)",
		e.IngredientName, e.Requested, e.Available)
}

// PartialReceiptError dilaporkan saat penerimaan PO gagal di tengah jalan.
// Transaksi sudah di-rollback sehingga tidak ada kredit parsial yang
// tersimpan, tapi caller tetap diberi tahu baris mana yang sempat berhasil.
type PartialReceiptError struct {
	POID             uint
	CreditedLines    []uint
	FailedIngredient uint
	Err              error
}

func (e *PartialReceiptError) Error() string {
	return fmt.Sprintf("penerimaan PO %d gagal di bahan %d setelah %d baris (semua perubahan dibatalkan): %v",
		e.POID, e.FailedIngredient, len(e.CreditedLines), e.Err)
}

func (e *PartialReceiptError) Unwrap() error {
	return e.Err
}
