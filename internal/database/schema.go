package database

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customer (
		id INT PRIMARY KEY AUTO_INCREMENT,
		name VARCHAR(100) NOT NULL,
		password VARCHAR(100) NOT NULL,
		UNIQUE KEY uk_customer_name (name)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS shoe (
		id INT PRIMARY KEY AUTO_INCREMENT,
		model VARCHAR(100) NOT NULL,
		UNIQUE KEY uk_shoe_model (model)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS size (
		id INT PRIMARY KEY AUTO_INCREMENT,
		sizeNr INT NOT NULL,
		UNIQUE KEY uk_size_nr (sizeNr)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS color (
		id INT PRIMARY KEY AUTO_INCREMENT,
		colorName VARCHAR(50) NOT NULL,
		UNIQUE KEY uk_color_name (colorName)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS inventory (
		id INT PRIMARY KEY AUTO_INCREMENT,
		shoeId INT NOT NULL,
		sizeId INT NOT NULL,
		colorId INT NOT NULL,
		quantity INT NOT NULL DEFAULT 0,
		UNIQUE KEY uk_inventory_item (shoeId, sizeId, colorId),
		CONSTRAINT chk_inventory_quantity CHECK (quantity >= 0),
		FOREIGN KEY (shoeId) REFERENCES shoe(id),
		FOREIGN KEY (sizeId) REFERENCES size(id),
		FOREIGN KEY (colorId) REFERENCES color(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS orders (
		id INT PRIMARY KEY AUTO_INCREMENT,
		customerId INT NOT NULL,
		orderDate DATE NOT NULL,
		FOREIGN KEY (customerId) REFERENCES customer(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS order_item (
		orderId INT NOT NULL,
		inventoryId INT NOT NULL,
		quantity INT NOT NULL DEFAULT 1,
		PRIMARY KEY (orderId, inventoryId),
		FOREIGN KEY (orderId) REFERENCES orders(id),
		FOREIGN KEY (inventoryId) REFERENCES inventory(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`DROP PROCEDURE IF EXISTS AddToCart`,

	// An existing order must belong to the customer. A null order id creates
	// a new order. Line item, order and stock change commit together.
	`CREATE PROCEDURE AddToCart(IN p_customerId INT, IN p_orderId INT, IN p_inventoryId INT)
	BEGIN
		DECLARE v_orderId INT;
		DECLARE EXIT HANDLER FOR SQLEXCEPTION
		BEGIN
			ROLLBACK;
			RESIGNAL;
		END;

		START TRANSACTION;

		IF p_orderId IS NULL THEN
			INSERT INTO orders (customerId, orderDate) VALUES (p_customerId, CURRENT_DATE);
			SET v_orderId = LAST_INSERT_ID();
		ELSE
			SELECT id INTO v_orderId FROM orders
			WHERE id = p_orderId AND customerId = p_customerId
			FOR UPDATE;
			IF v_orderId IS NULL THEN
				SIGNAL SQLSTATE '45000' SET MESSAGE_TEXT = 'order not found for customer';
			END IF;
		END IF;

		UPDATE inventory SET quantity = quantity - 1
		WHERE id = p_inventoryId AND quantity > 0;
		IF ROW_COUNT() = 0 THEN
			SIGNAL SQLSTATE '45000' SET MESSAGE_TEXT = 'out of stock';
		END IF;

		INSERT INTO order_item (orderId, inventoryId, quantity)
		VALUES (v_orderId, p_inventoryId, 1)
		ON DUPLICATE KEY UPDATE quantity = quantity + 1;

		COMMIT;
	END`,
}

var dropStatements = []string{
	`DROP PROCEDURE IF EXISTS AddToCart`,
	`DROP TABLE IF EXISTS order_item`,
	`DROP TABLE IF EXISTS orders`,
	`DROP TABLE IF EXISTS inventory`,
	`DROP TABLE IF EXISTS color`,
	`DROP TABLE IF EXISTS size`,
	`DROP TABLE IF EXISTS shoe`,
	`DROP TABLE IF EXISTS customer`,
}

// SetupSchema creates the shop tables and the AddToCart procedure.
func (db *DB) SetupSchema(ctx context.Context) error {
	return db.execAll(ctx, schemaStatements)
}

// DropSchema removes everything SetupSchema creates, children first.
func (db *DB) DropSchema(ctx context.Context) error {
	return db.execAll(ctx, dropStatements)
}

func (db *DB) execAll(ctx context.Context, statements []string) error {
	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("statement %d: %w", i+1, err)
		}
	}
	return nil
}
