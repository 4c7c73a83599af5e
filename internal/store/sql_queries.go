// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The HappyTails Authors

package store

const (
	createUser = `INSERT INTO users (user_uuid, username, first_name, last_name, phone, document_type, document_number, email, password_hash, role)
    VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, $10)
    RETURNING id, user_uuid, username, first_name, last_name, phone, document_type, COALESCE(document_number, ''), email, password_hash, role, created_at;`

	findUserByEmail = `SELECT id, user_uuid, username, first_name, last_name, phone, document_type, COALESCE(document_number, ''), email, password_hash, role, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, user_uuid, username, first_name, last_name, phone, document_type, COALESCE(document_number, ''), email, password_hash, role, created_at
    FROM users
    WHERE id = $1;`

	findUserByUUID = `SELECT id, user_uuid, username, first_name, last_name, phone, document_type, COALESCE(document_number, ''), email, password_hash, role, created_at
    FROM users
    WHERE user_uuid = $1;`

	findUserConflicts = `SELECT email = $1, username = $2, COALESCE(document_number = $3, FALSE)
    FROM users
    WHERE email = $1 OR username = $2 OR document_number = $3
    LIMIT 1;`

	listAdmins = `SELECT id, user_uuid, username, first_name, last_name, phone, document_type, COALESCE(document_number, ''), email, password_hash, role, created_at
    FROM users
    WHERE role IN ('admin', 'superadmin')
    ORDER BY CASE role WHEN 'superadmin' THEN 0 ELSE 1 END, id;`

	listUserReports = `SELECT u.id, u.username, u.first_name, u.last_name, u.email, u.role, u.created_at,
        COALESCE(p.total, 0) AS pets, COALESCE(a.total, 0) AS adoptions
    FROM users u
    LEFT JOIN (SELECT owner_id, COUNT(*) AS total FROM pets GROUP BY owner_id) p ON p.owner_id = u.id
    LEFT JOIN (SELECT owner_id, COUNT(*) AS total FROM adoptions WHERE owner_id IS NOT NULL GROUP BY owner_id) a ON a.owner_id = u.id
    ORDER BY CASE u.role WHEN 'superadmin' THEN 0 WHEN 'admin' THEN 1 ELSE 2 END, u.created_at DESC;`

	countUsersByRole = `SELECT role, COUNT(*) FROM users GROUP BY role;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	getMfaConfig = `SELECT user_id, secret, enabled, verified_at
    FROM mfa_configs
    WHERE user_id = $1;`

	upsertMfaSecret = `INSERT INTO mfa_configs (user_id, secret, enabled)
    VALUES ($1, $2, FALSE)
    ON CONFLICT (user_id) DO UPDATE SET secret = EXCLUDED.secret, enabled = FALSE, verified_at = NULL;`

	enableMfa = `UPDATE mfa_configs
    SET enabled = TRUE, verified_at = NOW()
    WHERE user_id = $1;`

	listPets = `SELECT id, owner_id, name, species, breed_id, weight_kg, age_years, age_months, birth_date, description, vaccination_status, photo_url, created_at
    FROM pets
    ORDER BY id;`

	listPetsByOwner = `SELECT id, owner_id, name, species, breed_id, weight_kg, age_years, age_months, birth_date, description, vaccination_status, photo_url, created_at
    FROM pets
    WHERE owner_id = $1
    ORDER BY id;`

	listPetRefs = `SELECT id, name FROM pets ORDER BY name;`

	getPet = `SELECT id, owner_id, name, species, breed_id, weight_kg, age_years, age_months, birth_date, description, vaccination_status, photo_url, created_at
    FROM pets
    WHERE id = $1;`

	createPet = `INSERT INTO pets (owner_id, name, species, breed_id, weight_kg, age_years, age_months, birth_date, description, vaccination_status, photo_url)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    RETURNING id, owner_id, name, species, breed_id, weight_kg, age_years, age_months, birth_date, description, vaccination_status, photo_url, created_at;`

	deletePet = `DELETE FROM pets WHERE id = $1;`

	petExists = `SELECT EXISTS (SELECT 1 FROM pets WHERE id = $1);`

	listAdoptions = `SELECT id, owner_id, name, species, breed, age_years, size, city, country, description, shelter, image, status, created_at
    FROM adoptions
    ORDER BY CASE status WHEN 'Disponible' THEN 0 ELSE 1 END, id DESC;`

	getAdoption = `SELECT id, owner_id, name, species, breed, age_years, size, city, country, description, shelter, image, status, created_at
    FROM adoptions
    WHERE id = $1;`

	createAdoption = `INSERT INTO adoptions (owner_id, name, species, breed, age_years, size, city, country, description, shelter, image, status)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    RETURNING id, owner_id, name, species, breed, age_years, size, city, country, description, shelter, image, status, created_at;`

	deleteAdoption = `DELETE FROM adoptions WHERE id = $1;`

	listAdoptionsByOwnerWithRequests = `SELECT a.id, a.owner_id, a.name, a.species, a.breed, a.age_years, a.size, a.city, a.country, a.description, a.shelter, a.image, a.status, a.created_at, COALESCE(c.total, 0)
    FROM adoptions a
    LEFT JOIN (SELECT adoption_id, COUNT(*) AS total FROM adoption_requests GROUP BY adoption_id) c ON c.adoption_id = a.id
    WHERE a.owner_id = $1
    ORDER BY a.id DESC;`

	userStatistics = `SELECT
        (SELECT COUNT(*) FROM pets WHERE owner_id = $1),
        (SELECT COUNT(*) FROM adoptions WHERE owner_id = $1),
        (SELECT COUNT(*) FROM adoptions WHERE owner_id = $1 AND status = 'Disponible'),
        (SELECT COUNT(*) FROM adoptions WHERE owner_id = $1 AND status = 'Adoptado'),
        (SELECT COUNT(*) FROM adoption_requests r JOIN adoptions a ON a.id = r.adoption_id WHERE a.owner_id = $1);`

	setAdoptionStatus = `UPDATE adoptions SET status = $2 WHERE id = $1;`

	createAdoptionRequest = `INSERT INTO adoption_requests (adoption_id, requester_id, message, status)
    VALUES ($1, $2, $3, 'Pendiente')
    RETURNING id, adoption_id, requester_id, message, status, created_at;`

	listRequestsByAdoption = `SELECT r.id, r.adoption_id, r.requester_id, u.username, u.email, r.message, r.status, r.created_at
    FROM adoption_requests r
    JOIN users u ON u.id = r.requester_id
    WHERE r.adoption_id = $1
    ORDER BY r.created_at DESC;`

	listRequestsByRequester = `SELECT r.id, r.adoption_id, r.requester_id, u.username, u.email, r.message, r.status, r.created_at
    FROM adoption_requests r
    JOIN users u ON u.id = r.requester_id
    WHERE r.requester_id = $1
    ORDER BY r.created_at DESC;`

	listAllRequests = `SELECT r.id, r.adoption_id, r.requester_id, u.username, u.email, r.message, r.status, r.created_at
    FROM adoption_requests r
    JOIN users u ON u.id = r.requester_id
    ORDER BY r.created_at DESC;`

	getAdoptionRequest = `SELECT id, adoption_id, requester_id, message, status, created_at
    FROM adoption_requests
    WHERE id = $1;`

	setRequestStatus = `UPDATE adoption_requests SET status = $2 WHERE id = $1;`

	deleteAdoptionRequest = `DELETE FROM adoption_requests WHERE id = $1;`

	listReminders = `SELECT r.id, r.pet_id, r.type_id, r.due_date, r.status, r.notes
    FROM reminders r
    ORDER BY r.due_date ASC, r.id;`

	listRemindersByOwner = `SELECT r.id, r.pet_id, r.type_id, r.due_date, r.status, r.notes
    FROM reminders r
    JOIN pets p ON p.id = r.pet_id
    WHERE p.owner_id = $1
    ORDER BY r.due_date ASC, r.id;`

	getReminder = `SELECT id, pet_id, type_id, due_date, status, notes
    FROM reminders
    WHERE id = $1;`

	createReminder = `INSERT INTO reminders (pet_id, type_id, due_date, status, notes)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, pet_id, type_id, due_date, status, notes;`

	deleteReminder = `DELETE FROM reminders WHERE id = $1;`

	listReminderTypes = `SELECT id, name FROM reminder_types ORDER BY id;`

	listDueReminders = `SELECT r.id, p.name, t.name, r.due_date, r.status
    FROM reminders r
    JOIN pets p ON p.id = r.pet_id
    JOIN reminder_types t ON t.id = r.type_id
    WHERE p.owner_id = $1
      AND r.status = 'Pendiente'
      AND r.due_date <= NOW() + INTERVAL '3 days'
    ORDER BY r.due_date ASC;`

	markOverdueReminders = `UPDATE reminders
    SET status = 'Vencido'
    WHERE status = 'Pendiente' AND due_date < $1;`

	listNotificationsByUser = `SELECT id, user_id, message, read, created_at
    FROM notifications
    WHERE user_id = $1
    ORDER BY created_at DESC;`

	createNotification = `INSERT INTO notifications (user_id, message, read)
    VALUES ($1, $2, FALSE)
    RETURNING id, user_id, message, read, created_at;`

	markNotificationRead = `UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2;`

	insertActivity = `INSERT INTO activity_log (user_id, action, meta)
    VALUES ($1, $2, $3);`

	listActivityByUser = `SELECT id, user_id, action, meta, created_at
    FROM activity_log
    WHERE user_id = $1
    ORDER BY created_at DESC
    LIMIT $2;`
)
